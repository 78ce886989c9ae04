package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env и дает переопределить порт флагом -port,
// это удобнее при локальном запуске нескольких инстансов.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var port string
	flag.StringVar(&port, "port", "", "HTTP port, overrides the PORT environment variable")
	flag.Parse()

	if port == "" {
		return nil
	}
	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}

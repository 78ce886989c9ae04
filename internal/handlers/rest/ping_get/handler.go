package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	response := dto.PingResponse{
		Message: &message,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

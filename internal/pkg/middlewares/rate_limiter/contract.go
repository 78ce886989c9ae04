package rate_limiter

import "github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"

// Limiter дублирует token_bucket.Limiter, чтобы middleware не тянул
// конкретную реализацию.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

package order_created

import (
	"context"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_bulk_post_test
package shipment_status_bulk_post

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
	BulkUpdateStatus(ctx context.Context, rows []entities.BulkStatusRow, actor entities.Actor) *entities.BulkStatusSummary
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_put_test
package shipment_status_put

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
	UpdateStatus(ctx context.Context, docID, rawStatus string, actor entities.Actor) (*entities.StatusUpdate, error)
}

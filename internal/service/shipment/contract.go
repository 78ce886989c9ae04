//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type Repository interface {
	// GetShipmentStatus возвращает текущий статус заказа, уже нормализованный
	// на границе чтения (исторические данные могли писаться старыми значениями).
	GetShipmentStatus(ctx context.Context, docID string) (entities.ShipmentStatusType, error)
	UpdateShipmentStatus(ctx context.Context, docID string, status entities.ShipmentStatusType, updatedAt time.Time) error
	InsertStatusHistory(ctx context.Context, docID string, entry entities.StatusHistoryEntry) error

	GetDocIDByConsignment(ctx context.Context, consignmentNumber string) (string, error)
	SetConsignment(ctx context.Context, docID, consignmentNumber, courierPartner, courierType string, updatedAt time.Time) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type shipmentLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

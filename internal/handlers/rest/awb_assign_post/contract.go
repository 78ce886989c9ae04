//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=awb_assign_post_test
package awb_assign_post

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

type PoolService interface {
	Allocate(ctx context.Context, courierType, docID, storeID, orderID, requestID string) (*entities.AwbAllocation, error)
	Release(ctx context.Context, awbNumber, docID string) (*entities.AwbRelease, error)
}

type ShipmentService interface {
	AssignConsignment(ctx context.Context, docID, consignmentNumber, courierPartner, courierType string, actor entities.Actor) (*entities.StatusUpdate, error)
}

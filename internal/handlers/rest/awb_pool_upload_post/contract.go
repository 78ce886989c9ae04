//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=awb_pool_upload_post_test
package awb_pool_upload_post

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
	UploadPool(ctx context.Context, rows []map[string]string, uploadedBy string) (*entities.PoolUploadSummary, error)
}

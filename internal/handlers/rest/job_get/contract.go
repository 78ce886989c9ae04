//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_get_test
package job_get

import (
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

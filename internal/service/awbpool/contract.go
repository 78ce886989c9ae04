//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=awbpool_test
package awbpool

import (
	"context"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type Repository interface {
	// UpsertPoolEntries пишет один чанк загрузки пула. На существующих записях
	// обновляются только категория и метаданные — поля назначения не трогаются.
	UpsertPoolEntries(ctx context.Context, entries []entities.PoolEntryUpsert) (created, updated int64, err error)

	GetUnassignedForAllocation(ctx context.Context, category entities.AwbCategory) (*entities.AwbEntry, error)
	GetAssignedByRequestID(ctx context.Context, requestID string) (*entities.AwbEntry, error)
	MarkAssigned(ctx context.Context, assignment entities.AwbAssignment) error

	ResetEntry(ctx context.Context, awbNumber, releasedByDocID string, releasedAt time.Time) error

	CountUnassigned(ctx context.Context) (map[entities.AwbCategory]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type poolLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

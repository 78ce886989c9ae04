package awb

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/awbpool"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = `awb_number, category, assigned, assigned_at, released_at,
		assigned_doc_id, assigned_store_id, order_id, request_id,
		released_by_doc_id, uploaded_by, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// UpsertPoolEntries дозаливает чанк инвентаря. Существующим записям
// обновляются только категория и метаданные загрузки: поля назначения в
// апдейте не участвуют, чтобы не гоняться с конкурентным Allocate.
// `xmax = 0` отличает вставленные строки от обновленных.
func (r *Repository) UpsertPoolEntries(ctx context.Context, entries []entities.PoolEntryUpsert) (created, updated int64, err error) {
	if len(entries) == 0 {
		return 0, 0, nil
	}

	builder := qb.
		Insert("awb_pool").
		Columns("awb_number", "category", "uploaded_by")
	for _, entry := range entries {
		builder = builder.Values(entry.Number, entry.Category.String(), entry.UploadedBy)
	}
	builder = builder.Suffix(`
		ON CONFLICT (awb_number) DO UPDATE SET
			category = EXCLUDED.category,
			uploaded_by = EXCLUDED.uploaded_by,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted`)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected awb repository upsert build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected awb repository upsert error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inserted bool
		if err := rows.Scan(&inserted); err != nil {
			return 0, 0, fmt.Errorf("unexpected awb repository upsert scan error: %w", err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("unexpected awb repository upsert rows error: %w", err)
	}

	return created, updated, nil
}

// GetUnassignedForAllocation выбирает произвольную свободную запись категории.
// Порядок выдачи не гарантируется и не нужен; атомарность обеспечивает
// serializable-транзакция вокруг вызова.
func (r *Repository) GetUnassignedForAllocation(ctx context.Context, category entities.AwbCategory) (*entities.AwbEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM awb_pool
		WHERE category = $1 AND assigned = FALSE
		LIMIT 1
	`

	entryDB, err := r.scanEntry(r.querier.QueryRow(ctx, query, category.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, awbpool.ErrAwbUnavailable
		}
		return nil, fmt.Errorf("unexpected awb repository get unassigned error: %w", err)
	}

	return ToDomain(entryDB), nil
}

func (r *Repository) GetAssignedByRequestID(ctx context.Context, requestID string) (*entities.AwbEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM awb_pool
		WHERE request_id = $1 AND assigned = TRUE
		LIMIT 1
	`

	entryDB, err := r.scanEntry(r.querier.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, awbpool.ErrAwbNotFound
		}
		return nil, fmt.Errorf("unexpected awb repository get by request id error: %w", err)
	}

	return ToDomain(entryDB), nil
}

// MarkAssigned помечает запись занятой. Условие assigned = FALSE защищает от
// двойной выдачи: ноль затронутых строк означает, что запись успел забрать
// конкурентный вызов.
func (r *Repository) MarkAssigned(ctx context.Context, assignment entities.AwbAssignment) error {
	query := `
		UPDATE awb_pool
		SET assigned = TRUE,
			assigned_at = $2,
			assigned_doc_id = $3,
			assigned_store_id = $4,
			order_id = $5,
			request_id = $6,
			updated_at = NOW()
		WHERE awb_number = $1 AND assigned = FALSE
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		assignment.Number,
		assignment.AssignedAt,
		assignment.DocID,
		assignment.StoreID,
		assignment.OrderID,
		assignment.RequestID,
	)
	if err != nil {
		return fmt.Errorf("unexpected awb repository mark assigned error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return awbpool.ErrAwbUnavailable
	}
	return nil
}

// ResetEntry безусловно сбрасывает запись в свободное состояние, создавая её
// при отсутствии (release обязан быть идемпотентным и для незнакомых номеров).
func (r *Repository) ResetEntry(ctx context.Context, awbNumber, releasedByDocID string, releasedAt time.Time) error {
	builder := qb.
		Insert("awb_pool").
		Columns("awb_number", "category", "assigned", "released_at", "released_by_doc_id").
		Values(awbNumber, entities.DefaultCategory.String(), false, releasedAt, releasedByDocID).
		Suffix(`
			ON CONFLICT (awb_number) DO UPDATE SET
				assigned = FALSE,
				assigned_at = NULL,
				assigned_doc_id = '',
				assigned_store_id = '',
				order_id = '',
				request_id = '',
				released_at = EXCLUDED.released_at,
				released_by_doc_id = EXCLUDED.released_by_doc_id,
				updated_at = NOW()`)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected awb repository reset build error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected awb repository reset error: %w", err)
	}
	return nil
}

func (r *Repository) CountUnassigned(ctx context.Context) (map[entities.AwbCategory]int64, error) {
	query := `
		SELECT category, COUNT(*)
		FROM awb_pool
		WHERE assigned = FALSE
		GROUP BY category
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected awb repository count unassigned error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.AwbCategory]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("unexpected awb repository count scan error: %w", err)
		}
		counts[entities.AwbCategory(category)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected awb repository count rows error: %w", err)
	}

	return counts, nil
}

func (r *Repository) scanEntry(row pgx.Row) (*AwbEntryDB, error) {
	var entryDB AwbEntryDB
	err := row.Scan(
		&entryDB.Number,
		&entryDB.Category,
		&entryDB.Assigned,
		&entryDB.AssignedAt,
		&entryDB.ReleasedAt,
		&entryDB.AssignedDocID,
		&entryDB.AssignedStoreID,
		&entryDB.OrderID,
		&entryDB.RequestID,
		&entryDB.ReleasedByDocID,
		&entryDB.UploadedBy,
		&entryDB.CreatedAt,
		&entryDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entryDB, nil
}

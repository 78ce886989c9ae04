package awbpool

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

const (
	// maxPoolUploadEntries — верхняя граница одной загрузки после дедупликации.
	maxPoolUploadEntries = 10_000

	// uploadChunkSize держит каждый батч в пределах лимитов хранилища.
	uploadChunkSize = 200
)

type AwbPool struct {
	log        poolLogger
	repository Repository
	txManager  TxManager
}

func New(log poolLogger, repository Repository, txManager TxManager) *AwbPool {
	return &AwbPool{
		log:        log.With(),
		repository: repository,
		txManager:  txManager,
	}
}

// UploadPool разбирает табличные строки загрузки пула и идемпотентно
// дозаливает инвентарь. Ячейки могут содержать несколько номеров; дубликаты
// схлопываются по всему входу, категория последнего вхождения побеждает.
// Запись по чанкам: ошибка в одном чанке не портит записи за его пределами,
// повтор неудачного чанка — ответственность вызывающей стороны (upsert делает
// повтор безопасным).
func (p *AwbPool) UploadPool(ctx context.Context, rows []map[string]string, uploadedBy string) (*entities.PoolUploadSummary, error) {
	total := 0
	deduped := make(map[string]entities.AwbCategory)

	for _, row := range rows {
		for header, cell := range row {
			category, ok := entities.CategoryForPoolColumn(header)
			if !ok {
				continue
			}
			for _, value := range entities.SplitAwbCell(cell) {
				number := entities.NormalizeAwbNumber(value)
				if number == "" {
					continue
				}
				total++
				deduped[number] = category
			}
		}
	}

	if len(deduped) > maxPoolUploadEntries {
		return nil, fmt.Errorf("%d entries after dedup: %w", len(deduped), ErrPoolTooLarge)
	}

	// стабильный порядок чанков, map не гарантирует порядок обхода
	numbers := make([]string, 0, len(deduped))
	for number := range deduped {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	summary := entities.PoolUploadSummary{
		Total:   total,
		Skipped: total - len(deduped),
	}

	for start := 0; start < len(numbers); start += uploadChunkSize {
		end := start + uploadChunkSize
		if end > len(numbers) {
			end = len(numbers)
		}

		chunk := make([]entities.PoolEntryUpsert, 0, end-start)
		for _, number := range numbers[start:end] {
			chunk = append(chunk, entities.PoolEntryUpsert{
				Number:     number,
				Category:   deduped[number],
				UploadedBy: uploadedBy,
			})
		}

		created, updated, err := p.repository.UpsertPoolEntries(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("upsert pool chunk at %d: %w", start, err)
		}
		summary.Created += int(created)
		summary.Updated += int(updated)
	}

	p.log.With(
		logger.NewField("total", summary.Total),
		logger.NewField("created", summary.Created),
		logger.NewField("updated", summary.Updated),
		logger.NewField("skipped", summary.Skipped),
	).Info("awb pool upload processed")

	return &summary, nil
}

// Allocate атомарно выдает один свободный трек-номер из категории,
// соответствующей типу курьера. Чтение и пометка занятости выполняются в
// одной serializable-транзакции: два конкурентных вызова никогда не получат
// один и тот же номер, конфликт сериализации прозрачно ретраится менеджером
// транзакций. requestID опционален: повтор с тем же requestID возвращает уже
// выданную запись вместо выдачи второй.
func (p *AwbPool) Allocate(ctx context.Context, courierType, docID, storeID, orderID, requestID string) (*entities.AwbAllocation, error) {
	if strings.TrimSpace(docID) == "" || strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingRequiredFields
	}

	category, recognized := entities.CategoryForCourierType(courierType)
	if !recognized {
		p.log.With(
			logger.NewField("courier_type", courierType),
			logger.NewField("category", category.String()),
		).Warn("unrecognized courier type, falling back to default category")
	}

	allocation := entities.AwbAllocation{}
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		if requestID != "" {
			existing, err := p.repository.GetAssignedByRequestID(ctx, requestID)
			switch {
			case err == nil:
				allocation = entities.AwbAllocation{
					AwbNumber:  existing.Number,
					Category:   existing.Category,
					AssignedAt: assignedAtOrNow(existing),
				}
				return nil
			case !errors.Is(err, ErrAwbNotFound):
				return fmt.Errorf("lookup by request id: %w", err)
			}
		}

		entry, err := p.repository.GetUnassignedForAllocation(ctx, category)
		if err != nil {
			if errors.Is(err, ErrAwbUnavailable) {
				return fmt.Errorf("category %s: %w", category, err)
			}
			return fmt.Errorf("find unassigned awb: %w", err)
		}

		assignment := entities.AwbAssignment{
			Number:     entry.Number,
			Category:   entry.Category,
			DocID:      docID,
			StoreID:    strings.ToLower(strings.TrimSpace(storeID)),
			OrderID:    orderID,
			RequestID:  requestID,
			AssignedAt: time.Now().UTC(),
		}

		if err := p.repository.MarkAssigned(ctx, assignment); err != nil {
			return fmt.Errorf("mark assigned: %w", err)
		}

		allocation = entities.AwbAllocation{
			AwbNumber:  assignment.Number,
			Category:   assignment.Category,
			AssignedAt: assignment.AssignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// Release безусловно возвращает номер в пул. Идемпотентен: повторный release
// и release несуществующего номера завершаются успехом (upsert), чтобы
// переживать запросы, пришедшие не по порядку. Транзакцией с другими
// операциями не оборачивается.
func (p *AwbPool) Release(ctx context.Context, awbNumber, docID string) (*entities.AwbRelease, error) {
	number := entities.NormalizeAwbNumber(awbNumber)
	if number == "" {
		return nil, ErrAwbRequired
	}

	releasedAt := time.Now().UTC()
	if err := p.repository.ResetEntry(ctx, number, docID, releasedAt); err != nil {
		return nil, fmt.Errorf("reset awb entry: %w", err)
	}

	return &entities.AwbRelease{
		AwbNumber:  number,
		ReleasedAt: releasedAt,
	}, nil
}

// CountUnassigned отдает число свободных номеров по категориям (для метрик).
func (p *AwbPool) CountUnassigned(ctx context.Context) (map[entities.AwbCategory]int64, error) {
	counts, err := p.repository.CountUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unassigned: %w", err)
	}
	return counts, nil
}

func assignedAtOrNow(entry *entities.AwbEntry) time.Time {
	if entry.AssignedAt != nil {
		return *entry.AssignedAt
	}
	return time.Now().UTC()
}

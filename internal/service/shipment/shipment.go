package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

// maxBulkErrors ограничивает список сообщений об ошибках массового
// обновления, чтобы ответ оператору оставался обозримым.
const maxBulkErrors = 200

type Shipment struct {
	log        shipmentLogger
	repository Repository
	txManager  TxManager
}

func New(log shipmentLogger, repository Repository, txManager TxManager) *Shipment {
	return &Shipment{
		log:        log.With(),
		repository: repository,
		txManager:  txManager,
	}
}

// UpdateStatus переводит отправление заказа в новый канонический статус.
// Смена статуса и добавление записи аудита выполняются в одной транзакции:
// читатель никогда не увидит историю без соответствующего статуса и наоборот.
// Легальность перехода from→to не проверяется — машина состояний разрешающая,
// курьеры присылают статусы не по порядку.
func (s *Shipment) UpdateStatus(ctx context.Context, docID, rawStatus string, actor entities.Actor) (*entities.StatusUpdate, error) {
	if strings.TrimSpace(docID) == "" {
		return nil, ErrMissingRequiredFields
	}

	to := entities.NormalizeShipmentStatus(rawStatus)
	if to == "" {
		return nil, fmt.Errorf("status %q: %w", rawStatus, ErrInvalidShipmentStatus)
	}

	update := entities.StatusUpdate{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		from, err := s.repository.GetShipmentStatus(ctx, docID)
		if err != nil {
			return fmt.Errorf("get current shipment status: %w", err)
		}

		updatedAt := time.Now().UTC()
		if err := s.repository.UpdateShipmentStatus(ctx, docID, to, updatedAt); err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		historyEntry := entities.StatusHistoryEntry{
			ChangedAt: updatedAt,
			From:      from,
			To:        to,
			UpdatedBy: actor,
		}
		if err := s.repository.InsertStatusHistory(ctx, docID, historyEntry); err != nil {
			return fmt.Errorf("insert status history: %w", err)
		}

		update = entities.StatusUpdate{
			DocID:     docID,
			Status:    to,
			UpdatedAt: updatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// AssignConsignment привязывает выданный трек-номер к заказу и переводит его
// в Assigned одной транзакцией: трек-номер, статус и запись аудита либо
// видны вместе, либо не видны вовсе.
func (s *Shipment) AssignConsignment(ctx context.Context, docID, consignmentNumber, courierPartner, courierType string, actor entities.Actor) (*entities.StatusUpdate, error) {
	if strings.TrimSpace(docID) == "" || strings.TrimSpace(consignmentNumber) == "" {
		return nil, ErrMissingRequiredFields
	}

	update := entities.StatusUpdate{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		from, err := s.repository.GetShipmentStatus(ctx, docID)
		if err != nil {
			return fmt.Errorf("get current shipment status: %w", err)
		}

		updatedAt := time.Now().UTC()
		if err := s.repository.SetConsignment(ctx, docID, consignmentNumber, courierPartner, courierType, updatedAt); err != nil {
			return fmt.Errorf("set consignment: %w", err)
		}
		if err := s.repository.UpdateShipmentStatus(ctx, docID, entities.StatusAssigned, updatedAt); err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		historyEntry := entities.StatusHistoryEntry{
			ChangedAt: updatedAt,
			From:      from,
			To:        entities.StatusAssigned,
			UpdatedBy: actor,
		}
		if err := s.repository.InsertStatusHistory(ctx, docID, historyEntry); err != nil {
			return fmt.Errorf("insert status history: %w", err)
		}

		update = entities.StatusUpdate{
			DocID:     docID,
			Status:    entities.StatusAssigned,
			UpdatedAt: updatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// BulkUpdateStatus обновляет статусы пачки заказов по трек-номеру. Строки
// обрабатываются независимо: промах поиска или ошибка записи одной строки не
// прерывает остальные. Итог — счетчики и ограниченный список ошибок для
// оператора; сама операция ошибкой не завершается.
func (s *Shipment) BulkUpdateStatus(ctx context.Context, rows []entities.BulkStatusRow, actor entities.Actor) *entities.BulkStatusSummary {
	summary := entities.BulkStatusSummary{}

	for i, row := range rows {
		summary.Processed++

		number := entities.NormalizeAwbNumber(row.ConsignmentNumber)
		if number == "" {
			s.recordBulkError(&summary, fmt.Sprintf("row %d: empty tracking number", i+1))
			continue
		}

		docID, err := s.repository.GetDocIDByConsignment(ctx, number)
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				s.recordBulkError(&summary, fmt.Sprintf("row %d: tracking number %s not found", i+1, number))
			} else {
				s.recordBulkError(&summary, fmt.Sprintf("row %d: lookup %s: %v", i+1, number, err))
			}
			continue
		}

		if _, err := s.UpdateStatus(ctx, docID, row.RawStatus, actor); err != nil {
			s.recordBulkError(&summary, fmt.Sprintf("row %d: %s: %v", i+1, number, err))
			continue
		}
		summary.Updated++
	}

	s.log.With(
		logger.NewField("processed", summary.Processed),
		logger.NewField("updated", summary.Updated),
		logger.NewField("failed", summary.Failed),
	).Info("bulk status update processed")

	return &summary
}

func (s *Shipment) recordBulkError(summary *entities.BulkStatusSummary, msg string) {
	summary.Failed++
	if len(summary.Errors) < maxBulkErrors {
		summary.Errors = append(summary.Errors, msg)
	}
}

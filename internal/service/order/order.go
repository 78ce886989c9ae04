package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// CreateOrder регистрирует заказ с новым отправлением в статусе New.
// Ключ документа детерминирован, поэтому повторная доставка того же события
// заказа упирается в ErrOrderAlreadyExists, а не плодит дубликаты.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if strings.TrimSpace(orderCreate.StoreID) == "" || strings.TrimSpace(orderCreate.OrderNumber) == "" {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	orderEntity := entities.Order{
		DocID:       entities.OrderDocID(orderCreate.StoreID, orderCreate.OrderNumber),
		StoreID:     strings.ToLower(strings.TrimSpace(orderCreate.StoreID)),
		OrderNumber: strings.TrimSpace(orderCreate.OrderNumber),
		Shipment: entities.ShipmentRecord{
			Status:      entities.StatusNew,
			CourierType: orderCreate.CourierType,
			WeightKg:    orderCreate.WeightKg,
			UpdatedAt:   now,
		},
		CreatedAt: now,
	}

	if err := s.repository.Create(ctx, orderEntity); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &orderEntity, nil
}

func (s *Service) GetOrder(ctx context.Context, docID string) (*entities.Order, error) {
	if strings.TrimSpace(docID) == "" {
		return nil, ErrMissingRequiredFields
	}

	orderEntity, err := s.repository.GetByDocID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

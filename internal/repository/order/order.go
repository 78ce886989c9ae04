package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/repository"
	orderservice "github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/order"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	query := `
		INSERT INTO orders (doc_id, store_id, order_number, shipment_status,
			consignment_number, courier_partner, courier_type, weight_kg,
			shipping_date, expected_delivery_date, shipment_updated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderEntity.DocID,
		orderEntity.StoreID,
		orderEntity.OrderNumber,
		orderEntity.Shipment.Status.String(),
		orderEntity.Shipment.ConsignmentNumber,
		orderEntity.Shipment.CourierPartner,
		orderEntity.Shipment.CourierType,
		orderEntity.Shipment.WeightKg,
		orderEntity.Shipment.ShippingDate,
		orderEntity.Shipment.ExpectedDeliveryDate,
		orderEntity.Shipment.UpdatedAt,
		orderEntity.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return orderservice.ErrOrderAlreadyExists
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetByDocID(ctx context.Context, docID string) (*entities.Order, error) {
	query := `
		SELECT doc_id, store_id, order_number, shipment_status,
			consignment_number, courier_partner, courier_type, weight_kg,
			shipping_date, expected_delivery_date, shipment_updated_at, created_at
		FROM orders
		WHERE doc_id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, docID).Scan(
		&orderDB.DocID,
		&orderDB.StoreID,
		&orderDB.OrderNumber,
		&orderDB.ShipmentStatus,
		&orderDB.ConsignmentNumber,
		&orderDB.CourierPartner,
		&orderDB.CourierType,
		&orderDB.WeightKg,
		&orderDB.ShippingDate,
		&orderDB.ExpectedDeliveryDate,
		&orderDB.ShipmentUpdatedAt,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetShipmentStatus(ctx context.Context, docID string) (entities.ShipmentStatusType, error) {
	query := `
		SELECT shipment_status
		FROM orders
		WHERE doc_id = $1
	`

	var raw string
	err := r.querier.QueryRow(ctx, query, docID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shipment.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository get status error: %w", err)
	}

	return NormalizeStoredStatus(raw), nil
}

func (r *Repository) UpdateShipmentStatus(ctx context.Context, docID string, status entities.ShipmentStatusType, updatedAt time.Time) error {
	builder := qb.
		Update("orders").
		Set("shipment_status", status.String()).
		Set("shipment_updated_at", updatedAt).
		Where(sq.Eq{"doc_id": docID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update status build error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) InsertStatusHistory(ctx context.Context, docID string, entry entities.StatusHistoryEntry) error {
	query := `
		INSERT INTO status_history (doc_id, changed_at, from_shipment_status,
			to_shipment_status, updated_by_id, updated_by_contact, updated_by_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		docID,
		entry.ChangedAt,
		entry.From.String(),
		entry.To.String(),
		entry.UpdatedBy.ID,
		entry.UpdatedBy.Contact,
		entry.UpdatedBy.Role,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository insert history error: %w", err)
	}
	return nil
}

func (r *Repository) GetDocIDByConsignment(ctx context.Context, consignmentNumber string) (string, error) {
	query := `
		SELECT doc_id
		FROM orders
		WHERE consignment_number = $1
		LIMIT 1
	`

	var docID string
	err := r.querier.QueryRow(ctx, query, consignmentNumber).Scan(&docID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", shipment.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository get by consignment error: %w", err)
	}

	return docID, nil
}

// SetConsignment выставляет трек-номер и данные курьера при назначении AWB.
func (r *Repository) SetConsignment(ctx context.Context, docID, consignmentNumber, courierPartner, courierType string, updatedAt time.Time) error {
	builder := qb.
		Update("orders").
		Set("consignment_number", consignmentNumber).
		Set("courier_partner", courierPartner).
		Set("courier_type", courierType).
		Set("shipment_updated_at", updatedAt).
		Where(sq.Eq{"doc_id": docID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository set consignment build error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository set consignment error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrOrderNotFound
	}
	return nil
}

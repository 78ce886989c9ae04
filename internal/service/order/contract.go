//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByDocID(ctx context.Context, docID string) (*entities.Order, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"slasty/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity *entities.Order) error
	CountUnassigned(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

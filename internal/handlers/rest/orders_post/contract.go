//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_post_test
package orders_post

import (
	"context"

	"slasty/internal/entities"
	"slasty/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrders(ctx context.Context, orders []entities.OrderCreate) ([]int64, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_complete_post_test
package orders_complete_post

import (
	"context"
	"time"

	"slasty/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CompleteOrder(ctx context.Context, courierID, orderID int64, completeTime time.Time) (int64, error)
}

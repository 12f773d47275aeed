//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_get_test
package courier_get

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
	GetCourierInfo(ctx context.Context, id int64) (*entities.CourierInfo, error)
}

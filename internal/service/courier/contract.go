//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"slasty/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierEntity *entities.Courier) error
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	Update(ctx context.Context, patch entities.CourierPatch) (*entities.Courier, error)
}

type AssignmentRepository interface {
	ListActiveOrders(ctx context.Context, courierID int64) ([]entities.Order, error)
	Unassign(ctx context.Context, courierID int64, orderIDs []int64) error
	GetCourierStats(ctx context.Context, courierID int64) (*entities.CourierStats, error)
}

type TariffFactory interface {
	CapacityCeiling(transportType entities.TransportType) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

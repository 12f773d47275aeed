//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"slasty/internal/entities"
)

type Repository interface {
	ListUnassignedInRegions(ctx context.Context, regions []int64) ([]entities.Order, error)
	CreateAssignments(ctx context.Context, courierID int64, orderIDs []int64, assignTime time.Time, payment int64) error

	GetActiveAssignment(ctx context.Context, courierID, orderID int64) (*entities.AssignedOrder, error)
	GetLastCompleteTime(ctx context.Context, courierID int64) (*time.Time, error)
	CompleteAssignment(ctx context.Context, courierID, orderID int64, completeTime time.Time, deliveryTime time.Duration) error
}

type CourierService interface {
	GetCourier(ctx context.Context, courierID int64) (*entities.Courier, error)
}

type TariffFactory interface {
	CapacityCeiling(transportType entities.TransportType) float64
	AssignPayment(transportType entities.TransportType) int64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

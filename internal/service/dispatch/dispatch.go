package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slasty/internal/entities"
	"slasty/internal/repository"
	retrierconfig "slasty/pkg/retrier"
	"slasty/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Dispatch struct {
	repository     Repository
	courierService CourierService
	tariffFactory  TariffFactory
	txManager      TxManager
	retrier        retrierconfig.Retrier
}

func New(
	repository Repository,
	courierService CourierService,
	tariffFactory TariffFactory,
	txManager TxManager,
) *Dispatch {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isAssignConflict,
	}

	return &Dispatch{
		repository:     repository,
		courierService: courierService,
		tariffFactory:  tariffFactory,
		txManager:      txManager,
		retrier:        backoff_adapter.New(retryConfig),
	}
}

// AssignOrders захватывает для курьера все подходящие свободные заказы.
// Конфликт сериализации с параллельным назначением ретраится с backoff,
// после исчерпания попыток наружу уходит ErrAssignConflict.
func (d *Dispatch) AssignOrders(ctx context.Context, courierID int64) (*entities.OrderAssignment, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	start := time.Now()

	var assignment *entities.OrderAssignment
	err := d.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		assignment, err = d.assignOnce(ctx, courierID)
		return err
	})

	AssignDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	OrdersAssignedTotal.Add(float64(len(assignment.OrderIDs)))
	return assignment, nil
}

func (d *Dispatch) assignOnce(ctx context.Context, courierID int64) (*entities.OrderAssignment, error) {
	assignment := entities.OrderAssignment{
		CourierID: courierID,
		OrderIDs:  []int64{},
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := d.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier for assignment: %w", err)
		}

		candidates, err := d.repository.ListUnassignedInRegions(ctx, courier.Regions)
		if err != nil {
			return fmt.Errorf("list unassigned orders: %w", err)
		}

		ceiling := d.tariffFactory.CapacityCeiling(courier.Transport)

		orderIDs := make([]int64, 0, len(candidates))
		for i := range candidates {
			if entities.FitsCourier(courier, ceiling, &candidates[i]) {
				orderIDs = append(orderIDs, candidates[i].ID)
			}
		}
		if len(orderIDs) == 0 {
			return nil
		}

		// Assign это часть бизнес логики поэтому время задаем тут а не в БД
		assignTime := time.Now().UTC()
		payment := d.tariffFactory.AssignPayment(courier.Transport)

		if err := d.repository.CreateAssignments(ctx, courierID, orderIDs, assignTime, payment); err != nil {
			return fmt.Errorf("create assignments: %w", err)
		}

		assignment.OrderIDs = orderIDs
		assignment.AssignTime = assignTime
		return nil
	})
	if err != nil {
		if isAssignConflict(err) {
			AssignConflictsTotal.Inc()
			return nil, ErrAssignConflict
		}
		return nil, err
	}

	return &assignment, nil
}

func (d *Dispatch) CompleteOrder(ctx context.Context, courierID, orderID int64, completeTime time.Time) (int64, error) {
	if !isValidID(courierID) {
		return 0, ErrInvalidCourierID
	}
	if !isValidID(orderID) {
		return 0, ErrInvalidOrderID
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		assigned, err := d.repository.GetActiveAssignment(ctx, courierID, orderID)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if !completeTime.After(assigned.AssignTime) {
			return ErrInvalidCompleteTime
		}

		// Отсчет времени доставки идет от предыдущего завершенного заказа
		// курьера, для первого заказа - от времени назначения.
		previousTime := assigned.AssignTime
		lastComplete, err := d.repository.GetLastCompleteTime(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get last complete time: %w", err)
		}
		if lastComplete != nil {
			previousTime = *lastComplete
		}

		// Завершение раньше предыдущего завершения дало бы отрицательную
		// длительность доставки.
		if !completeTime.After(previousTime) {
			return ErrInvalidCompleteTime
		}

		deliveryTime := completeTime.Sub(previousTime)

		if err := d.repository.CompleteAssignment(ctx, courierID, orderID, completeTime, deliveryTime); err != nil {
			return fmt.Errorf("complete assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	OrdersCompletedTotal.Inc()
	return orderID, nil
}

func isAssignConflict(err error) bool {
	return repository.IsSerializationError(err) || errors.Is(err, ErrAssignConflict)
}

package courier

import (
	"context"
	"fmt"

	"slasty/internal/entities"
)

type Courier struct {
	repository    Repository
	assignments   AssignmentRepository
	tariffFactory TariffFactory
	txManager     TxManager
}

func New(
	repository Repository,
	assignments AssignmentRepository,
	tariffFactory TariffFactory,
	txManager TxManager,
) *Courier {
	return &Courier{
		repository:    repository,
		assignments:   assignments,
		tariffFactory: tariffFactory,
		txManager:     txManager,
	}
}

// CreateCouriers сохраняет пакет курьеров целиком. Если хотя бы один
// не прошел валидацию, не сохраняется никто и наружу уходит
// ValidationError со списком забракованных id.
func (s *Courier) CreateCouriers(ctx context.Context, couriers []entities.CourierCreate) ([]int64, error) {
	if len(couriers) == 0 {
		return nil, ErrMissingRequiredFields
	}

	parsed := make([]entities.Courier, 0, len(couriers))
	badIDs := make([]int64, 0)
	for _, courierCreate := range couriers {
		courierEntity, err := buildCourier(courierCreate)
		if err != nil {
			badIDs = append(badIDs, courierCreate.ID)
			continue
		}
		parsed = append(parsed, *courierEntity)
	}
	if len(badIDs) > 0 {
		return nil, &ValidationError{IDs: badIDs}
	}

	ids := make([]int64, 0, len(parsed))
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for i := range parsed {
			if err := s.repository.Create(ctx, &parsed[i]); err != nil {
				return fmt.Errorf("create courier %d: %w", parsed[i].ID, err)
			}
			ids = append(ids, parsed[i].ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if !isValidID(courierModify.ID) {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Transport == nil &&
		courierModify.Regions == nil &&
		courierModify.WorkingHours == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Transport != nil && !isValidTransport(courierModify.Transport.String()) {
		return nil, ErrInvalidTransport
	}
	if courierModify.Regions != nil && !isValidRegions(*courierModify.Regions) {
		return nil, ErrInvalidRegions
	}

	patch := entities.CourierPatch{
		ID:        courierModify.ID,
		Transport: courierModify.Transport,
		Regions:   courierModify.Regions,
	}
	if courierModify.WorkingHours != nil {
		hours, err := parseIntervals(*courierModify.WorkingHours)
		if err != nil {
			return nil, ErrInvalidWorkingHours
		}
		patch.WorkingHours = &hours
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courierEntity, err := s.repository.Update(ctx, patch)
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		if err := s.unassignUnsuitable(ctx, courierEntity); err != nil {
			return err
		}

		updated = courierEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courierEntity, nil
}

func (s *Courier) GetCourierInfo(ctx context.Context, id int64) (*entities.CourierInfo, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	info := entities.CourierInfo{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courierEntity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		stats, err := s.assignments.GetCourierStats(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier stats: %w", err)
		}

		info = entities.CourierInfo{
			Courier:  *courierEntity,
			Rating:   computeRating(stats.MinAvgDeliverySeconds),
			Earnings: stats.Earnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// После смены профиля уже назначенные, но не завершенные заказы могли
// перестать подходить курьеру - такие возвращаются в общий пул.
func (s *Courier) unassignUnsuitable(ctx context.Context, courierEntity *entities.Courier) error {
	active, err := s.assignments.ListActiveOrders(ctx, courierEntity.ID)
	if err != nil {
		return fmt.Errorf("list active orders: %w", err)
	}

	ceiling := s.tariffFactory.CapacityCeiling(courierEntity.Transport)

	unsuitable := make([]int64, 0, len(active))
	for i := range active {
		if !entities.SuitsCourier(courierEntity, ceiling, &active[i]) {
			unsuitable = append(unsuitable, active[i].ID)
		}
	}
	if len(unsuitable) == 0 {
		return nil
	}

	if err := s.assignments.Unassign(ctx, courierEntity.ID, unsuitable); err != nil {
		return fmt.Errorf("unassign orders: %w", err)
	}
	return nil
}

func buildCourier(courierCreate entities.CourierCreate) (*entities.Courier, error) {
	if !isValidID(courierCreate.ID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidTransport(courierCreate.Transport.String()) {
		return nil, ErrInvalidTransport
	}
	if !isValidRegions(courierCreate.Regions) {
		return nil, ErrInvalidRegions
	}

	hours, err := parseIntervals(courierCreate.WorkingHours)
	if err != nil {
		return nil, err
	}

	return &entities.Courier{
		ID:           courierCreate.ID,
		Transport:    courierCreate.Transport,
		Regions:      courierCreate.Regions,
		WorkingHours: hours,
	}, nil
}

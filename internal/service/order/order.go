package order

import (
	"context"
	"fmt"

	"slasty/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateOrders сохраняет пакет заказов целиком. Если хотя бы один
// не прошел валидацию, не сохраняется никто и наружу уходит
// ValidationError со списком забракованных id.
func (s *Order) CreateOrders(ctx context.Context, orders []entities.OrderCreate) ([]int64, error) {
	if len(orders) == 0 {
		return nil, ErrMissingRequiredFields
	}

	parsed := make([]entities.Order, 0, len(orders))
	badIDs := make([]int64, 0)
	for _, orderCreate := range orders {
		orderEntity, err := buildOrder(orderCreate)
		if err != nil {
			badIDs = append(badIDs, orderCreate.ID)
			continue
		}
		parsed = append(parsed, *orderEntity)
	}
	if len(badIDs) > 0 {
		return nil, &ValidationError{IDs: badIDs}
	}

	ids := make([]int64, 0, len(parsed))
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for i := range parsed {
			if err := s.repository.Create(ctx, &parsed[i]); err != nil {
				return fmt.Errorf("create order %d: %w", parsed[i].ID, err)
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

func (s *Order) CountUnassigned(ctx context.Context) (int64, error) {
	count, err := s.repository.CountUnassigned(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unassigned orders: %w", err)
	}
	return count, nil
}

func buildOrder(orderCreate entities.OrderCreate) (*entities.Order, error) {
	if !isValidID(orderCreate.ID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidWeight(orderCreate.Weight) {
		return nil, ErrInvalidWeight
	}
	if !isValidRegion(orderCreate.Region) {
		return nil, ErrInvalidRegion
	}

	windows, err := parseIntervals(orderCreate.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return &entities.Order{
		ID:            orderCreate.ID,
		Weight:        orderCreate.Weight,
		Region:        orderCreate.Region,
		DeliveryHours: windows,
	}, nil
}

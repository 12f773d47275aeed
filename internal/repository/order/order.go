package order

import (
	"context"
	"fmt"

	"slasty/internal/entities"
	"slasty/internal/repository"
	"slasty/internal/service/order"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity *entities.Order) error {
	if err := repository.GetOrCreateRegions(ctx, r.querier, []int64{orderEntity.Region}); err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err := r.querier.Exec(ctx,
		`INSERT INTO orders (id, weight, region_id) VALUES ($1, $2, $3)`,
		orderEntity.ID,
		orderEntity.Weight,
		orderEntity.Region,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderExists
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	intervalIDs, err := repository.GetOrCreateIntervals(ctx, r.querier, orderEntity.DeliveryHours)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`INSERT INTO order_delivery_hours (order_id, interval_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		orderEntity.ID, intervalIDs,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return nil
}

func (r *Repository) CountUnassigned(ctx context.Context) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE is_assigned = FALSE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	return count, nil
}

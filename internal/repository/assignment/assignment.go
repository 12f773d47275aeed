package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"slasty/internal/entities"
	"slasty/internal/repository"
	"slasty/internal/service/dispatch"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListUnassignedInRegions возвращает свободные заказы в указанных регионах
// вместе с окнами доставки, блокируя строки заказов до конца транзакции.
// Сортировка по id дает детерминированный порядок назначения.
func (r *Repository) ListUnassignedInRegions(ctx context.Context, regions []int64) ([]entities.Order, error) {
	if len(regions) == 0 {
		return []entities.Order{}, nil
	}

	rows, err := r.querier.Query(ctx, `
		SELECT id, weight, region_id, is_assigned, created_at
		FROM orders
		WHERE is_assigned = FALSE AND region_id = ANY($1)
		ORDER BY id
		FOR UPDATE`,
		regions,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list unassigned error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Weight,
			&orderModel.RegionID,
			&orderModel.IsAssigned,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list unassigned error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list unassigned error: %w", err)
	}

	return r.withDeliveryHours(ctx, orderModels)
}

// CreateAssignments создает записи назначений и помечает заказы занятыми
// одним репозиторным вызовом, чтобы пара "заказ назначен" / "есть живая
// запись назначения" не расходилась.
func (r *Repository) CreateAssignments(ctx context.Context, courierID int64, orderIDs []int64, assignTime time.Time, payment int64) error {
	_, err := r.querier.Exec(ctx, `
		INSERT INTO assigned_orders (order_id, courier_id, assign_time, payment)
		SELECT unnest($1::bigint[]), $2, $3, $4`,
		orderIDs, courierID, assignTime, payment,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dispatch.ErrAssignConflict
		}
		return fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`UPDATE orders SET is_assigned = TRUE WHERE id = ANY($1)`,
		orderIDs,
	)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetActiveAssignment(ctx context.Context, courierID, orderID int64) (*entities.AssignedOrder, error) {
	query := `
		SELECT order_id, courier_id, assign_time, complete_time, delivery_seconds, is_completed, payment
		FROM assigned_orders
		WHERE courier_id = $1 AND order_id = $2 AND is_completed = FALSE`

	var assignedModel AssignedOrderDB
	err := r.querier.QueryRow(ctx, query, courierID, orderID).Scan(
		&assignedModel.OrderID,
		&assignedModel.CourierID,
		&assignedModel.AssignTime,
		&assignedModel.CompleteTime,
		&assignedModel.DeliverySeconds,
		&assignedModel.IsCompleted,
		&assignedModel.Payment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active error: %w", err)
	}

	return ToDomain(&assignedModel), nil
}

// GetLastCompleteTime возвращает время последнего завершенного заказа курьера,
// nil - если завершенных заказов еще нет.
func (r *Repository) GetLastCompleteTime(ctx context.Context, courierID int64) (*time.Time, error) {
	var lastTime *time.Time
	err := r.querier.QueryRow(ctx, `
		SELECT MAX(complete_time)
		FROM assigned_orders
		WHERE courier_id = $1 AND is_completed = TRUE`,
		courierID,
	).Scan(&lastTime)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository last complete time error: %w", err)
	}
	return lastTime, nil
}

func (r *Repository) CompleteAssignment(ctx context.Context, courierID, orderID int64, completeTime time.Time, deliveryTime time.Duration) error {
	result, err := r.querier.Exec(ctx, `
		UPDATE assigned_orders
		SET complete_time = $3,
		    delivery_seconds = $4,
		    is_completed = TRUE
		WHERE courier_id = $1 AND order_id = $2 AND is_completed = FALSE`,
		courierID, orderID, completeTime, int64(deliveryTime/time.Second),
	)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository complete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrAssignmentNotFound
	}
	return nil
}

// ListActiveOrders возвращает назначенные и еще не завершенные заказы курьера
// вместе с окнами доставки, блокируя строки заказов до конца транзакции.
func (r *Repository) ListActiveOrders(ctx context.Context, courierID int64) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, `
		SELECT o.id, o.weight, o.region_id, o.is_assigned, o.created_at
		FROM orders o
		JOIN assigned_orders ao ON ao.order_id = o.id
		WHERE ao.courier_id = $1 AND ao.is_completed = FALSE
		ORDER BY o.id
		FOR UPDATE OF o`,
		courierID,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list active error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Weight,
			&orderModel.RegionID,
			&orderModel.IsAssigned,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list active error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list active error: %w", err)
	}

	return r.withDeliveryHours(ctx, orderModels)
}

// Unassign удаляет незавершенные назначения и возвращает заказы в пул.
func (r *Repository) Unassign(ctx context.Context, courierID int64, orderIDs []int64) error {
	_, err := r.querier.Exec(ctx, `
		DELETE FROM assigned_orders
		WHERE courier_id = $1 AND order_id = ANY($2) AND is_completed = FALSE`,
		courierID, orderIDs,
	)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository unassign error: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`UPDATE orders SET is_assigned = FALSE WHERE id = ANY($1)`,
		orderIDs,
	)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository unassign error: %w", err)
	}
	return nil
}

func (r *Repository) GetCourierStats(ctx context.Context, courierID int64) (*entities.CourierStats, error) {
	stats := &entities.CourierStats{}

	err := r.querier.QueryRow(ctx, `
		SELECT COALESCE(SUM(payment), 0)
		FROM assigned_orders
		WHERE courier_id = $1 AND is_completed = TRUE`,
		courierID,
	).Scan(&stats.Earnings)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository stats error: %w", err)
	}

	err = r.querier.QueryRow(ctx, `
		SELECT MIN(region_avg.avg_seconds)
		FROM (
			SELECT AVG(ao.delivery_seconds) AS avg_seconds
			FROM assigned_orders ao
			JOIN orders o ON o.id = ao.order_id
			WHERE ao.courier_id = $1 AND ao.is_completed = TRUE
			GROUP BY o.region_id
		) region_avg`,
		courierID,
	).Scan(&stats.MinAvgDeliverySeconds)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository stats error: %w", err)
	}

	return stats, nil
}

func (r *Repository) withDeliveryHours(ctx context.Context, orderModels []OrderDB) ([]entities.Order, error) {
	if len(orderModels) == 0 {
		return []entities.Order{}, nil
	}

	orderIDs := make([]int64, 0, len(orderModels))
	for _, orderModel := range orderModels {
		orderIDs = append(orderIDs, orderModel.ID)
	}

	rows, err := r.querier.Query(ctx, `
		SELECT odh.order_id, ti.start_min, ti.end_min
		FROM order_delivery_hours odh
		JOIN time_intervals ti ON ti.id = odh.interval_id
		WHERE odh.order_id = ANY($1)
		ORDER BY odh.order_id, ti.id`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository delivery hours error: %w", err)
	}
	defer rows.Close()

	windows := make(map[int64][]entities.TimeInterval, len(orderModels))
	for rows.Next() {
		var orderID int64
		var startMin, endMin int
		if err := rows.Scan(&orderID, &startMin, &endMin); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository delivery hours error: %w", err)
		}
		windows[orderID] = append(windows[orderID], entities.TimeInterval{Start: startMin, End: endMin})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository delivery hours error: %w", err)
	}

	orders := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, ToOrderDomain(&orderModels[i], windows[orderModels[i].ID]))
	}
	return orders, nil
}

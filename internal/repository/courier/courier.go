package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"slasty/internal/entities"
	"slasty/internal/repository"
	"slasty/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierEntity *entities.Courier) error {
	_, err := r.querier.Exec(ctx,
		`INSERT INTO couriers (id, transport) VALUES ($1, $2)`,
		courierEntity.ID,
		courierEntity.Transport.String(),
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return courier.ErrCourierExists
		}
		return fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	if err := r.replaceRegions(ctx, courierEntity.ID, courierEntity.Regions); err != nil {
		return err
	}
	return r.replaceWorkingHours(ctx, courierEntity.ID, courierEntity.WorkingHours)
}

func (r *Repository) Update(ctx context.Context, patch entities.CourierPatch) (*entities.Courier, error) {
	builder := qb.Update("couriers")

	if patch.Transport != nil {
		builder = builder.Set("transport", patch.Transport.String())
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": patch.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	if patch.Regions != nil {
		if err := r.deleteRegions(ctx, patch.ID); err != nil {
			return nil, err
		}
		if err := r.replaceRegions(ctx, patch.ID, *patch.Regions); err != nil {
			return nil, err
		}
	}

	if patch.WorkingHours != nil {
		if err := r.deleteWorkingHours(ctx, patch.ID); err != nil {
			return nil, err
		}
		if err := r.replaceWorkingHours(ctx, patch.ID, *patch.WorkingHours); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, patch.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT id, transport, created_at, updated_at
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Transport,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	regions, err := r.getRegions(ctx, id)
	if err != nil {
		return nil, err
	}

	hours, err := r.getWorkingHours(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&courierModel, regions, hours), nil
}

func (r *Repository) getRegions(ctx context.Context, courierID int64) ([]int64, error) {
	rows, err := r.querier.Query(ctx,
		`SELECT region_id FROM courier_regions WHERE courier_id = $1 ORDER BY region_id`,
		courierID,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository regions error: %w", err)
	}
	defer rows.Close()

	regions := make([]int64, 0, 4)
	for rows.Next() {
		var regionID int64
		if err := rows.Scan(&regionID); err != nil {
			return nil, fmt.Errorf("unexpected courier repository regions error: %w", err)
		}
		regions = append(regions, regionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository regions error: %w", err)
	}
	return regions, nil
}

func (r *Repository) getWorkingHours(ctx context.Context, courierID int64) ([]IntervalDB, error) {
	rows, err := r.querier.Query(ctx, `
		SELECT ti.start_min, ti.end_min
		FROM courier_working_hours cwh
		JOIN time_intervals ti ON ti.id = cwh.interval_id
		WHERE cwh.courier_id = $1
		ORDER BY ti.id`,
		courierID,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository working hours error: %w", err)
	}
	defer rows.Close()

	hours := make([]IntervalDB, 0, 4)
	for rows.Next() {
		var interval IntervalDB
		if err := rows.Scan(&interval.StartMin, &interval.EndMin); err != nil {
			return nil, fmt.Errorf("unexpected courier repository working hours error: %w", err)
		}
		hours = append(hours, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository working hours error: %w", err)
	}
	return hours, nil
}

func (r *Repository) replaceRegions(ctx context.Context, courierID int64, regions []int64) error {
	if err := repository.GetOrCreateRegions(ctx, r.querier, regions); err != nil {
		return fmt.Errorf("unexpected courier repository regions error: %w", err)
	}

	_, err := r.querier.Exec(ctx,
		`INSERT INTO courier_regions (courier_id, region_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		courierID, regions,
	)
	if err != nil {
		return fmt.Errorf("unexpected courier repository regions error: %w", err)
	}
	return nil
}

func (r *Repository) replaceWorkingHours(ctx context.Context, courierID int64, hours []entities.TimeInterval) error {
	intervalIDs, err := repository.GetOrCreateIntervals(ctx, r.querier, hours)
	if err != nil {
		return fmt.Errorf("unexpected courier repository working hours error: %w", err)
	}

	_, err = r.querier.Exec(ctx,
		`INSERT INTO courier_working_hours (courier_id, interval_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		courierID, intervalIDs,
	)
	if err != nil {
		return fmt.Errorf("unexpected courier repository working hours error: %w", err)
	}
	return nil
}

func (r *Repository) deleteRegions(ctx context.Context, courierID int64) error {
	_, err := r.querier.Exec(ctx,
		`DELETE FROM courier_regions WHERE courier_id = $1`, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository regions error: %w", err)
	}
	return nil
}

func (r *Repository) deleteWorkingHours(ctx context.Context, courierID int64) error {
	_, err := r.querier.Exec(ctx,
		`DELETE FROM courier_working_hours WHERE courier_id = $1`, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository working hours error: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"slasty/internal/entities"
)

// Регионы и интервалы создаются при первом упоминании (upsert-семантика),
// поэтому вместо "создать или упасть" репозитории используют явный get-or-create.

func GetOrCreateRegions(ctx context.Context, q Querier, regionIDs []int64) error {
	for _, regionID := range regionIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO regions (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`,
			regionID,
		)
		if err != nil {
			return fmt.Errorf("get or create region %d: %w", regionID, err)
		}
	}
	return nil
}

// GetOrCreateIntervals возвращает id интервалов в порядке входного среза.
// DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал строку и для уже
// существующего интервала.
func GetOrCreateIntervals(ctx context.Context, q Querier, intervals []entities.TimeInterval) ([]int64, error) {
	query := `
		INSERT INTO time_intervals (interval, start_min, end_min)
		VALUES ($1, $2, $3)
		ON CONFLICT (interval) DO UPDATE SET interval = EXCLUDED.interval
		RETURNING id
	`

	ids := make([]int64, 0, len(intervals))
	for _, interval := range intervals {
		var id int64
		err := q.QueryRow(ctx, query, interval.String(), interval.Start, interval.End).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("get or create interval %s: %w", interval, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package order

import (
	"slasty/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidWeight(weight float64) bool {
	return weight >= entities.MinOrderWeight && weight <= entities.MaxOrderWeight
}

func isValidRegion(region int64) bool {
	return region > 0
}

func parseIntervals(raw []string) ([]entities.TimeInterval, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidDeliveryHours
	}

	windows := make([]entities.TimeInterval, 0, len(raw))
	for _, s := range raw {
		window, err := entities.ParseInterval(s)
		if err != nil {
			return nil, ErrInvalidDeliveryHours
		}
		windows = append(windows, window)
	}
	return windows, nil
}

package courier

import (
	"slasty/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidTransport(transport string) bool {
	switch transport {
	case "foot", "bike", "car":
		return true
	default:
		return false
	}
}

func isValidRegions(regions []int64) bool {
	if len(regions) == 0 {
		return false
	}
	for _, region := range regions {
		if region <= 0 {
			return false
		}
	}
	return true
}

func parseIntervals(raw []string) ([]entities.TimeInterval, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidWorkingHours
	}

	intervals := make([]entities.TimeInterval, 0, len(raw))
	for _, s := range raw {
		interval, err := entities.ParseInterval(s)
		if err != nil {
			return nil, ErrInvalidWorkingHours
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

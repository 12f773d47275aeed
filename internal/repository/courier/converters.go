package courier

import (
	"slasty/internal/entities"
)

func ToDomain(c *CourierDB, regions []int64, hours []IntervalDB) *entities.Courier {
	if c == nil {
		return nil
	}

	workingHours := make([]entities.TimeInterval, 0, len(hours))
	for _, h := range hours {
		workingHours = append(workingHours, entities.TimeInterval{Start: h.StartMin, End: h.EndMin})
	}

	return &entities.Courier{
		ID:           c.ID,
		Transport:    entities.TransportType(c.Transport),
		Regions:      regions,
		WorkingHours: workingHours,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

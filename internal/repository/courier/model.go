package courier

import "time"

type CourierDB struct {
	ID        int64
	Transport string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type IntervalDB struct {
	StartMin int
	EndMin   int
}

package assignment

import "time"

type AssignedOrderDB struct {
	OrderID         int64
	CourierID       int64
	AssignTime      time.Time
	CompleteTime    *time.Time
	DeliverySeconds *int64
	IsCompleted     bool
	Payment         int64
}

type OrderDB struct {
	ID         int64
	Weight     float64
	RegionID   int64
	IsAssigned bool
	CreatedAt  time.Time
}

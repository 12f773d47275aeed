package assignment

import (
	"time"

	"slasty/internal/entities"
)

func ToDomain(a *AssignedOrderDB) *entities.AssignedOrder {
	if a == nil {
		return nil
	}

	assigned := &entities.AssignedOrder{
		OrderID:      a.OrderID,
		CourierID:    a.CourierID,
		AssignTime:   a.AssignTime,
		CompleteTime: a.CompleteTime,
		IsCompleted:  a.IsCompleted,
		Payment:      a.Payment,
	}
	if a.DeliverySeconds != nil {
		deliveryTime := time.Duration(*a.DeliverySeconds) * time.Second
		assigned.DeliveryTime = &deliveryTime
	}
	return assigned
}

func ToOrderDomain(o *OrderDB, windows []entities.TimeInterval) entities.Order {
	return entities.Order{
		ID:            o.ID,
		Weight:        o.Weight,
		Region:        o.RegionID,
		DeliveryHours: windows,
		IsAssigned:    o.IsAssigned,
		CreatedAt:     o.CreatedAt,
	}
}

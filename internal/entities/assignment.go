package entities

import "time"

// AssignedOrder связывает заказ с курьером. Заказ может быть назначен
// не более чем одному курьеру одновременно (order_id - уникальный ключ).
type AssignedOrder struct {
	OrderID      int64
	CourierID    int64
	AssignTime   time.Time
	CompleteTime *time.Time
	DeliveryTime *time.Duration
	IsCompleted  bool
	Payment      int64
}

// OrderAssignment - результат одного вызова назначения заказов курьеру.
// При пустом OrderIDs время назначения не заполняется.
type OrderAssignment struct {
	CourierID  int64
	OrderIDs   []int64
	AssignTime time.Time
}

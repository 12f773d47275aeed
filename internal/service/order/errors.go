package order

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidDeliveryHours  = errors.New("invalid delivery hours")

	ErrOrderExists = errors.New("order already exists")
)

// ValidationError перечисляет заказы, не прошедшие валидацию.
// Пакет при этом не сохраняется целиком.
type ValidationError struct {
	IDs []int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orders failed validation: %v", e.IDs)
}

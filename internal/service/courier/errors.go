package courier

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidTransport      = errors.New("invalid transport type")
	ErrInvalidRegions        = errors.New("invalid regions")
	ErrInvalidWorkingHours   = errors.New("invalid working hours")
	ErrUnknownField          = errors.New("unknown field")

	ErrCourierNotFound = errors.New("courier not found")
	ErrCourierExists   = errors.New("courier already exists")
)

// ValidationError перечисляет курьеров, не прошедших валидацию.
// Пакет при этом не сохраняется целиком.
type ValidationError struct {
	IDs []int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("couriers failed validation: %v", e.IDs)
}

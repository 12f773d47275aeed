package dispatch

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidOrderID   = errors.New("invalid order id")

	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrInvalidCompleteTime = errors.New("complete time is not after assign time")
	ErrAssignConflict      = errors.New("assignment conflicts with a concurrent transaction")
)

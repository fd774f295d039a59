package manufacturing

import "errors"

var (
	ErrMONotFound          = errors.New("manufacturing order not found")
	ErrInvalidTransition   = errors.New("invalid manufacturing order status transition")
	ErrMOAlreadyExists     = errors.New("manufacturing order already exists for this order")
	ErrOrderNotConfirmed   = errors.New("cannot create manufacturing order for an unconfirmed order")
	ErrScheduleInPast      = errors.New("scheduled date cannot be in the past")
	ErrMONotOnCalendar     = errors.New("manufacturing order is not on the calendar")
	ErrMOAlreadyInProgress = errors.New("manufacturing order already in progress")
)

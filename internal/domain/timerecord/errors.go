package timerecord

import "errors"

var (
	ErrUnknownClockNumber = errors.New("clock number does not match any employee")
)

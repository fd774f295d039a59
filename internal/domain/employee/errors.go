package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrClockNumberTaken = errors.New("clock number already in use")
)

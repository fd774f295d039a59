package payroll

import "errors"

var (
	ErrPeriodAlreadyCommitted = errors.New("payroll already committed for this period")
	ErrPeriodNotFound         = errors.New("payroll period not found")
	ErrSettingsNotFound       = errors.New("payroll settings not found")
	ErrLoanNotFound           = errors.New("employee loan not found")
	ErrNoEmployees            = errors.New("no active employees to run payroll for")
	ErrUnknownEmployee        = errors.New("override references an unknown employee")
)

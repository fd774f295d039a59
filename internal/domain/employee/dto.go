package employee

import (
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ClockNumber  string          `json:"clock_number"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	EmployeeType string          `json:"employee_type"`
	CappedHours  *float64        `json:"capped_hours,omitempty"`
	Department   *string         `json:"department,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockNumber(r.ClockNumber) {
		errs = append(errs, validator.ValidationError{Field: "clock_number", Message: "must be 1-6 digits"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.EmployeeType != string(TypePermanent) && r.EmployeeType != string(TypeCasual) {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "must be 'permanent' or 'casual'"})
	}
	if r.CappedHours != nil && (*r.CappedHours < 0 || *r.CappedHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "capped_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FirstName    *string          `json:"first_name,omitempty"`
	LastName     *string          `json:"last_name,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	EmployeeType *string          `json:"employee_type,omitempty"`
	CappedHours  *float64         `json:"capped_hours,omitempty"`
	Department   *string          `json:"department,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.EmployeeType != nil && *r.EmployeeType != string(TypePermanent) && *r.EmployeeType != string(TypeCasual) {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "must be 'permanent' or 'casual'"})
	}
	if r.CappedHours != nil && (*r.CappedHours < 0 || *r.CappedHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "capped_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	ClockNumber  string          `json:"clock_number"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	EmployeeType string          `json:"employee_type"`
	CappedHours  float64         `json:"capped_hours"`
	Department   *string         `json:"department,omitempty"`
	IsActive     bool            `json:"is_active"`
}

type EmployeeFilter struct {
	Search     string
	Department *string
	ActiveOnly bool
	Page       int
	Limit      int
}

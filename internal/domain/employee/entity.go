package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeType string

const (
	TypePermanent EmployeeType = "permanent"
	TypeCasual    EmployeeType = "casual"
)

// DefaultCappedHours is the minimum guaranteed paid hours per shift
// applied when an employee has no override. Despite the historical name,
// it is a floor, not a ceiling: a short day is paid as a full shift.
const DefaultCappedHours = 11.0

// Employee is an HR record keyed for payroll by ClockNumber, which joins
// against attendance rows. Employees are never deleted, only deactivated.
type Employee struct {
	ID           string
	ClockNumber  string
	FirstName    string
	LastName     string
	HourlyRate   decimal.Decimal
	EmployeeType EmployeeType
	CappedHours  float64
	Department   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

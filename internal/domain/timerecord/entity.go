package timerecord

import "time"

// TimeRecord is one employee's attendance for one day. Rows come from
// the clock system upload; a re-upload for the same window replaces the
// earlier rows for that clock number. Absence of a row means the
// employee did not work that day.
type TimeRecord struct {
	ID                  string
	EmployeeClockNumber string
	WorkDate            time.Time
	HoursWorked         float64
	IsWeekend           bool
	CreatedAt           time.Time
}

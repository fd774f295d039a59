package timerecord

import (
	"strconv"
	"time"

	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
)

type UploadEntry struct {
	ClockNumber string  `json:"clock_number"`
	WorkDate    string  `json:"work_date"`
	HoursWorked float64 `json:"hours_worked"`
}

type UploadRequest struct {
	Entries []UploadEntry `json:"entries"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for i, e := range r.Entries {
		idx := strconv.Itoa(i)
		if !validator.IsValidClockNumber(e.ClockNumber) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + idx + "].clock_number", Message: "must be 1-6 digits"})
		}
		if _, ok := validator.IsValidDate(e.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "entries[" + idx + "].work_date", Message: "must be a date in YYYY-MM-DD format"})
		}
		if e.HoursWorked < 0 || e.HoursWorked > 24 {
			errs = append(errs, validator.ValidationError{Field: "entries[" + idx + "].hours_worked", Message: "must be between 0 and 24"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsWeekendDate reports whether a work date falls on Saturday or Sunday.
// Weekend hours are tracked but excluded from regular fortnightly pay.
func IsWeekendDate(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

type TimeRecordResponse struct {
	ID                  string  `json:"id"`
	EmployeeClockNumber string  `json:"employee_clock_number"`
	WorkDate            string  `json:"work_date"`
	HoursWorked         float64 `json:"hours_worked"`
	IsWeekend           bool    `json:"is_weekend"`
}

type UploadResult struct {
	Inserted int `json:"inserted"`
	Replaced int `json:"replaced"`
}

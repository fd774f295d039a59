package payroll

import "time"

// Pay periods are fortnights anchored to a fixed epoch. There is no
// calendar-month alignment: every period starts an exact multiple of 14
// days from the epoch, and a day on the boundary belongs to the period
// starting that day.
var PeriodEpoch = time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)

const PeriodLengthDays = 14

type PeriodStatus string

const (
	PeriodStatusDraft     PeriodStatus = "draft"
	PeriodStatusCurrent   PeriodStatus = "current"
	PeriodStatusCompleted PeriodStatus = "completed"
)

// PayPeriod is a derived fortnightly window. It is only persisted once a
// payroll run is committed against it.
type PayPeriod struct {
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
}

// PeriodFor returns the pay period containing the given day.
func PeriodFor(today time.Time) PayPeriod {
	day := dateOnly(today)
	days := int(day.Sub(PeriodEpoch).Hours() / 24)

	periodsPassed := days / PeriodLengthDays
	if days < 0 && days%PeriodLengthDays != 0 {
		periodsPassed--
	}

	start := PeriodEpoch.AddDate(0, 0, periodsPassed*PeriodLengthDays)
	return periodFromStart(start)
}

// Previous returns the period immediately before p.
func (p PayPeriod) Previous() PayPeriod {
	return periodFromStart(p.StartDate.AddDate(0, 0, -PeriodLengthDays))
}

// Next returns the period immediately after p.
func (p PayPeriod) Next() PayPeriod {
	return periodFromStart(p.StartDate.AddDate(0, 0, PeriodLengthDays))
}

// Contains reports whether the day falls inside [StartDate, EndDate].
func (p PayPeriod) Contains(t time.Time) bool {
	day := dateOnly(t)
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}

// Status classifies p relative to today.
func (p PayPeriod) Status(today time.Time) PeriodStatus {
	day := dateOnly(today)
	switch {
	case day.After(p.EndDate):
		return PeriodStatusCompleted
	case day.Before(p.StartDate):
		return PeriodStatusDraft
	default:
		return PeriodStatusCurrent
	}
}

func periodFromStart(start time.Time) PayPeriod {
	end := start.AddDate(0, 0, PeriodLengthDays-1)
	return PayPeriod{
		StartDate: start,
		EndDate:   end,
		PayDate:   end.AddDate(0, 0, 1),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

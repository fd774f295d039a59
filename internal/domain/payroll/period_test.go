package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodFor_EpochDay(t *testing.T) {
	p := PeriodFor(PeriodEpoch)

	assert.Equal(t, PeriodEpoch, p.StartDate)
	assert.Equal(t, date(2025, time.July, 1), p.EndDate)
	assert.Equal(t, date(2025, time.July, 2), p.PayDate)
}

func TestPeriodFor_BoundaryBelongsToNewPeriod(t *testing.T) {
	// 2025-07-02 is exactly one stride after the epoch, so it starts a
	// fresh period rather than closing the old one.
	p := PeriodFor(date(2025, time.July, 2))

	assert.Equal(t, date(2025, time.July, 2), p.StartDate)
	assert.Equal(t, date(2025, time.July, 15), p.EndDate)
}

func TestPeriodFor_MidPeriod(t *testing.T) {
	p := PeriodFor(date(2025, time.June, 30))

	assert.Equal(t, PeriodEpoch, p.StartDate)
	assert.True(t, p.Contains(date(2025, time.June, 30)))
}

func TestPeriodFor_EpochAlignment(t *testing.T) {
	// Any day on or after the epoch resolves to an epoch-aligned period
	// with a 13-day span and next-day pay date.
	for days := 0; days < 400; days += 7 {
		today := PeriodEpoch.AddDate(0, 0, days)
		p := PeriodFor(today)

		offset := int(p.StartDate.Sub(PeriodEpoch).Hours() / 24)
		assert.Equal(t, 0, offset%PeriodLengthDays, "start not epoch-aligned for %s", today)
		assert.Equal(t, p.StartDate.AddDate(0, 0, 13), p.EndDate)
		assert.Equal(t, p.EndDate.AddDate(0, 0, 1), p.PayDate)
		assert.True(t, p.Contains(today))
	}
}

func TestPeriodFor_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2025, time.July, 2, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, time.July, 2, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, PeriodFor(morning).StartDate, PeriodFor(night).StartDate)
}

func TestPeriodFor_BeforeEpoch(t *testing.T) {
	p := PeriodFor(date(2025, time.June, 17))

	assert.Equal(t, date(2025, time.June, 4), p.StartDate)
	assert.Equal(t, date(2025, time.June, 17), p.EndDate)
}

func TestPayPeriod_PreviousNext(t *testing.T) {
	p := PeriodFor(PeriodEpoch)

	prev := p.Previous()
	assert.Equal(t, date(2025, time.June, 4), prev.StartDate)
	assert.Equal(t, date(2025, time.June, 17), prev.EndDate)

	next := p.Next()
	assert.Equal(t, date(2025, time.July, 2), next.StartDate)
	assert.Equal(t, date(2025, time.July, 16), next.PayDate)

	assert.Equal(t, p.StartDate, prev.Next().StartDate)
	assert.Equal(t, p.StartDate, next.Previous().StartDate)
}

func TestPayPeriod_Status(t *testing.T) {
	p := PeriodFor(PeriodEpoch)

	assert.Equal(t, PeriodStatusCurrent, p.Status(date(2025, time.June, 20)))
	assert.Equal(t, PeriodStatusCompleted, p.Status(date(2025, time.July, 2)))
	assert.Equal(t, PeriodStatusDraft, p.Status(date(2025, time.June, 10)))
}

package timerecord

import (
	"context"
	"time"
)

type TimeRecordRepository interface {
	// ReplaceRange deletes existing rows for the given clock numbers
	// inside [from, to] and inserts the new rows, in one transaction.
	ReplaceRange(ctx context.Context, clockNumbers []string, from, to time.Time, records []TimeRecord) (int, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]TimeRecord, error)
	ListByClockNumber(ctx context.Context, clockNumber string, from, to time.Time) ([]TimeRecord, error)
}

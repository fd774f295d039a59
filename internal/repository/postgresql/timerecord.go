package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

func (r *timeRecordRepository) ReplaceRange(ctx context.Context, clockNumbers []string, from, to time.Time, records []timerecord.TimeRecord) (int, error) {
	replaced := 0
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, `
			DELETE FROM time_records
			WHERE employee_clock_number = ANY($1) AND work_date BETWEEN $2 AND $3
		`, clockNumbers, from, to)
		if err != nil {
			return fmt.Errorf("failed to clear existing time records: %w", err)
		}
		replaced = int(tag.RowsAffected())

		for _, rec := range records {
			if rec.ID == "" {
				rec.ID = uuid.New().String()
			}
			_, err := q.Exec(txCtx, `
				INSERT INTO time_records (id, employee_clock_number, work_date, hours_worked, is_weekend)
				VALUES ($1, $2, $3, $4, $5)
			`, rec.ID, rec.EmployeeClockNumber, rec.WorkDate, rec.HoursWorked, rec.IsWeekend)
			if err != nil {
				return fmt.Errorf("failed to insert time record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return replaced, nil
}

func (r *timeRecordRepository) ListByRange(ctx context.Context, from, to time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_clock_number, work_date, hours_worked, is_weekend, created_at
		FROM time_records
		WHERE work_date BETWEEN $1 AND $2
		ORDER BY employee_clock_number, work_date`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeClockNumber, &rec.WorkDate, &rec.HoursWorked, &rec.IsWeekend, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *timeRecordRepository) ListByClockNumber(ctx context.Context, clockNumber string, from, to time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_clock_number, work_date, hours_worked, is_weekend, created_at
		FROM time_records
		WHERE employee_clock_number = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date`

	rows, err := q.Query(ctx, query, clockNumber, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeClockNumber, &rec.WorkDate, &rec.HoursWorked, &rec.IsWeekend, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

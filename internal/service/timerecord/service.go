package timerecord

import (
	"context"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/employee"
	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
)

type TimeRecordServiceImpl struct {
	timeRecordRepo timerecord.TimeRecordRepository
	employeeRepo   employee.EmployeeRepository
}

func NewTimeRecordService(timeRecordRepo timerecord.TimeRecordRepository, employeeRepo employee.EmployeeRepository) timerecord.TimeRecordService {
	return &TimeRecordServiceImpl{
		timeRecordRepo: timeRecordRepo,
		employeeRepo:   employeeRepo,
	}
}

// Upload validates the batch, rejects clock numbers that match no
// employee, and replaces any rows already stored for the batch's clock
// numbers inside its date range.
func (s *TimeRecordServiceImpl) Upload(ctx context.Context, req timerecord.UploadRequest) (timerecord.UploadResult, error) {
	if err := req.Validate(); err != nil {
		return timerecord.UploadResult{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return timerecord.UploadResult{}, fmt.Errorf("failed to load employees: %w", err)
	}
	known := make(map[string]bool, len(employees))
	for _, e := range employees {
		known[e.ClockNumber] = true
	}

	var (
		records []timerecord.TimeRecord
		from    time.Time
		to      time.Time
	)
	clockSet := make(map[string]bool)

	for _, entry := range req.Entries {
		if !known[entry.ClockNumber] {
			return timerecord.UploadResult{}, fmt.Errorf("%w: %s", timerecord.ErrUnknownClockNumber, entry.ClockNumber)
		}

		d, _ := time.Parse("2006-01-02", entry.WorkDate)
		if from.IsZero() || d.Before(from) {
			from = d
		}
		if to.IsZero() || d.After(to) {
			to = d
		}
		clockSet[entry.ClockNumber] = true

		records = append(records, timerecord.TimeRecord{
			EmployeeClockNumber: entry.ClockNumber,
			WorkDate:            d,
			HoursWorked:         entry.HoursWorked,
			IsWeekend:           timerecord.IsWeekendDate(d),
		})
	}

	clockNumbers := make([]string, 0, len(clockSet))
	for cn := range clockSet {
		clockNumbers = append(clockNumbers, cn)
	}

	replaced, err := s.timeRecordRepo.ReplaceRange(ctx, clockNumbers, from, to, records)
	if err != nil {
		return timerecord.UploadResult{}, fmt.Errorf("failed to store time records: %w", err)
	}

	return timerecord.UploadResult{
		Inserted: len(records),
		Replaced: replaced,
	}, nil
}

func (s *TimeRecordServiceImpl) ListRecords(ctx context.Context, from, to string) ([]timerecord.TimeRecordResponse, error) {
	fromDate, toDate, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.ListByRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}

	return toResponses(records), nil
}

func (s *TimeRecordServiceImpl) ListEmployeeRecords(ctx context.Context, clockNumber, from, to string) ([]timerecord.TimeRecordResponse, error) {
	fromDate, toDate, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByClockNumber(ctx, clockNumber); err != nil {
		return nil, err
	}

	records, err := s.timeRecordRepo.ListByClockNumber(ctx, clockNumber, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}

	return toResponses(records), nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
	}
	return fromDate, toDate, nil
}

func toResponses(records []timerecord.TimeRecord) []timerecord.TimeRecordResponse {
	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, timerecord.TimeRecordResponse{
			ID:                  r.ID,
			EmployeeClockNumber: r.EmployeeClockNumber,
			WorkDate:            r.WorkDate.Format("2006-01-02"),
			HoursWorked:         r.HoursWorked,
			IsWeekend:           r.IsWeekend,
		})
	}
	return responses
}

package timerecord

import (
	"context"
	"testing"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/employee"
	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByClockNumber(ctx context.Context, clockNumber string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ClockNumber == clockNumber {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeTimeRecordRepo struct {
	stored       []timerecord.TimeRecord
	replaced     int
	lastFrom     time.Time
	lastTo       time.Time
	clockNumbers []string
}

func (f *fakeTimeRecordRepo) ReplaceRange(ctx context.Context, clockNumbers []string, from, to time.Time, records []timerecord.TimeRecord) (int, error) {
	f.clockNumbers = clockNumbers
	f.lastFrom = from
	f.lastTo = to
	f.stored = records
	return f.replaced, nil
}

func (f *fakeTimeRecordRepo) ListByRange(ctx context.Context, from, to time.Time) ([]timerecord.TimeRecord, error) {
	return f.stored, nil
}

func (f *fakeTimeRecordRepo) ListByClockNumber(ctx context.Context, clockNumber string, from, to time.Time) ([]timerecord.TimeRecord, error) {
	var matched []timerecord.TimeRecord
	for _, r := range f.stored {
		if r.EmployeeClockNumber == clockNumber {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func activeEmployee(clock string) employee.Employee {
	return employee.Employee{
		ID:          "emp-" + clock,
		ClockNumber: clock,
		FirstName:   "Test",
		LastName:    "Worker",
		HourlyRate:  decimal.NewFromInt(25),
		IsActive:    true,
	}
}

func TestUploadStoresRecordsAndFlagsWeekends(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{activeEmployee("101")}}
	trRepo := &fakeTimeRecordRepo{replaced: 2}
	svc := NewTimeRecordService(trRepo, empRepo)

	result, err := svc.Upload(context.Background(), timerecord.UploadRequest{
		Entries: []timerecord.UploadEntry{
			{ClockNumber: "101", WorkDate: "2025-06-20", HoursWorked: 8},
			{ClockNumber: "101", WorkDate: "2025-06-21", HoursWorked: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 2, result.Replaced)
	require.Len(t, trRepo.stored, 2)
	assert.False(t, trRepo.stored[0].IsWeekend, "friday is not a weekend")
	assert.True(t, trRepo.stored[1].IsWeekend, "saturday is a weekend")
	assert.Equal(t, []string{"101"}, trRepo.clockNumbers)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), trRepo.lastFrom)
	assert.Equal(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), trRepo.lastTo)
}

func TestUploadRejectsUnknownClockNumber(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{activeEmployee("101")}}
	svc := NewTimeRecordService(&fakeTimeRecordRepo{}, empRepo)

	_, err := svc.Upload(context.Background(), timerecord.UploadRequest{
		Entries: []timerecord.UploadEntry{
			{ClockNumber: "999", WorkDate: "2025-06-20", HoursWorked: 8},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, timerecord.ErrUnknownClockNumber)
	assert.Contains(t, err.Error(), "999")
}

func TestUploadRejectsInvalidEntries(t *testing.T) {
	svc := NewTimeRecordService(&fakeTimeRecordRepo{}, &fakeEmployeeRepo{})

	cases := []struct {
		name  string
		req   timerecord.UploadRequest
		field string
	}{
		{
			name:  "empty batch",
			req:   timerecord.UploadRequest{},
			field: "entries",
		},
		{
			name: "bad clock number",
			req: timerecord.UploadRequest{Entries: []timerecord.UploadEntry{
				{ClockNumber: "abc", WorkDate: "2025-06-20", HoursWorked: 8},
			}},
			field: "clock_number",
		},
		{
			name: "bad date",
			req: timerecord.UploadRequest{Entries: []timerecord.UploadEntry{
				{ClockNumber: "101", WorkDate: "20/06/2025", HoursWorked: 8},
			}},
			field: "work_date",
		},
		{
			name: "hours out of range",
			req: timerecord.UploadRequest{Entries: []timerecord.UploadEntry{
				{ClockNumber: "101", WorkDate: "2025-06-20", HoursWorked: 30},
			}},
			field: "hours_worked",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tc.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestListEmployeeRecordsRequiresKnownEmployee(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{activeEmployee("101")}}
	trRepo := &fakeTimeRecordRepo{stored: []timerecord.TimeRecord{
		{EmployeeClockNumber: "101", WorkDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), HoursWorked: 8},
	}}
	svc := NewTimeRecordService(trRepo, empRepo)

	records, err := svc.ListEmployeeRecords(context.Background(), "101", "2025-06-18", "2025-07-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-20", records[0].WorkDate)

	_, err = svc.ListEmployeeRecords(context.Background(), "999", "2025-06-18", "2025-07-01")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListRecordsRejectsBadRange(t *testing.T) {
	svc := NewTimeRecordService(&fakeTimeRecordRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ListRecords(context.Background(), "not-a-date", "2025-07-01")
	assert.Error(t, err)
}

package employee

import (
	"context"
	"fmt"

	"github.com/boxline/boxline-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	capped := employee.DefaultCappedHours
	if req.CappedHours != nil {
		capped = *req.CappedHours
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ClockNumber:  req.ClockNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		HourlyRate:   req.HourlyRate,
		EmployeeType: employee.EmployeeType(req.EmployeeType),
		CappedHours:  capped,
		Department:   req.Department,
		IsActive:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, total, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		ClockNumber:  e.ClockNumber,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		HourlyRate:   e.HourlyRate,
		EmployeeType: string(e.EmployeeType),
		CappedHours:  e.CappedHours,
		Department:   e.Department,
		IsActive:     e.IsActive,
	}
}

package manufacturing

import (
	"context"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/manufacturing"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/boxline/boxline-backend-go/internal/repository/postgresql"
)

type MOServiceImpl struct {
	db        *database.DB
	moRepo    manufacturing.MORepository
	orderRepo order.OrderRepository
}

func NewMOService(db *database.DB, moRepo manufacturing.MORepository, orderRepo order.OrderRepository) manufacturing.MOService {
	return &MOServiceImpl{
		db:        db,
		moRepo:    moRepo,
		orderRepo: orderRepo,
	}
}

func (s *MOServiceImpl) CreateMO(ctx context.Context, req manufacturing.CreateMORequest) (manufacturing.MOResponse, error) {
	if err := req.Validate(); err != nil {
		return manufacturing.MOResponse{}, err
	}

	o, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	if o.IsCancelled {
		return manufacturing.MOResponse{}, order.ErrOrderCancelled
	}
	if !o.IsConfirmed {
		return manufacturing.MOResponse{}, manufacturing.ErrOrderNotConfirmed
	}

	created, err := s.moRepo.Create(ctx, manufacturing.ManufacturingOrder{
		OrderID:     req.OrderID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Status:      manufacturing.StatusPending,
		Notes:       req.Notes,
	})
	if err != nil {
		return manufacturing.MOResponse{}, err
	}

	return toResponse(created), nil
}

func (s *MOServiceImpl) GetMO(ctx context.Context, id string) (manufacturing.MOResponse, error) {
	mo, err := s.moRepo.GetByID(ctx, id)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	return toResponse(mo), nil
}

func (s *MOServiceImpl) ListMOs(ctx context.Context, filter manufacturing.MOFilter) ([]manufacturing.MOResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	mos, total, err := s.moRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list manufacturing orders: %w", err)
	}

	responses := make([]manufacturing.MOResponse, 0, len(mos))
	for _, mo := range mos {
		responses = append(responses, toResponse(mo))
	}

	return responses, total, nil
}

func (s *MOServiceImpl) Calendar(ctx context.Context, from, to string) ([]manufacturing.MOResponse, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	mos, err := s.moRepo.ListByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	responses := make([]manufacturing.MOResponse, 0, len(mos))
	for _, mo := range mos {
		responses = append(responses, toResponse(mo))
	}

	return responses, nil
}

// ScheduleMO moves the order on the calendar. A nil date removes it and
// drops the status back to pending. Completed and in-progress orders
// are pinned to their dates.
func (s *MOServiceImpl) ScheduleMO(ctx context.Context, req manufacturing.ScheduleMORequest) (manufacturing.MOResponse, error) {
	if err := req.Validate(); err != nil {
		return manufacturing.MOResponse{}, err
	}

	mo, err := s.moRepo.GetByID(ctx, req.ID)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	if mo.Status == manufacturing.StatusInProgress || mo.Status == manufacturing.StatusCompleted || mo.Status == manufacturing.StatusCancelled {
		return manufacturing.MOResponse{}, manufacturing.ErrInvalidTransition
	}

	if req.ScheduledDate == nil {
		if err := s.moRepo.SetSchedule(ctx, req.ID, nil, manufacturing.StatusPending); err != nil {
			return manufacturing.MOResponse{}, err
		}
		mo.ScheduledDate = nil
		mo.Status = manufacturing.StatusPending
		return toResponse(mo), nil
	}

	d, _ := time.Parse("2006-01-02", *req.ScheduledDate)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if d.Before(today) {
		return manufacturing.MOResponse{}, manufacturing.ErrScheduleInPast
	}

	if err := s.moRepo.SetSchedule(ctx, req.ID, &d, manufacturing.StatusScheduled); err != nil {
		return manufacturing.MOResponse{}, err
	}

	mo.ScheduledDate = &d
	mo.Status = manufacturing.StatusScheduled
	return toResponse(mo), nil
}

// StartMO moves a scheduled order into production and flags the client
// order as in production, in one transaction.
func (s *MOServiceImpl) StartMO(ctx context.Context, id string) (manufacturing.MOResponse, error) {
	mo, err := s.moRepo.GetByID(ctx, id)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	if mo.ScheduledDate == nil {
		return manufacturing.MOResponse{}, manufacturing.ErrMONotOnCalendar
	}
	if !mo.CanTransition(manufacturing.StatusInProgress) {
		return manufacturing.MOResponse{}, manufacturing.ErrInvalidTransition
	}

	now := time.Now()
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.moRepo.SetStatus(txCtx, id, manufacturing.StatusInProgress, &now, nil); err != nil {
			return err
		}
		return s.orderRepo.SetInProduction(txCtx, mo.OrderID, true)
	})
	if err != nil {
		return manufacturing.MOResponse{}, err
	}

	mo.Status = manufacturing.StatusInProgress
	mo.StartedAt = &now
	return toResponse(mo), nil
}

// CompleteMO finishes production and clears the client order's
// in-production flag.
func (s *MOServiceImpl) CompleteMO(ctx context.Context, id string) (manufacturing.MOResponse, error) {
	mo, err := s.moRepo.GetByID(ctx, id)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	if !mo.CanTransition(manufacturing.StatusCompleted) {
		return manufacturing.MOResponse{}, manufacturing.ErrInvalidTransition
	}

	now := time.Now()
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.moRepo.SetStatus(txCtx, id, manufacturing.StatusCompleted, nil, &now); err != nil {
			return err
		}
		return s.orderRepo.SetInProduction(txCtx, mo.OrderID, false)
	})
	if err != nil {
		return manufacturing.MOResponse{}, err
	}

	mo.Status = manufacturing.StatusCompleted
	mo.CompletedAt = &now
	return toResponse(mo), nil
}

func (s *MOServiceImpl) CancelMO(ctx context.Context, id string) (manufacturing.MOResponse, error) {
	mo, err := s.moRepo.GetByID(ctx, id)
	if err != nil {
		return manufacturing.MOResponse{}, err
	}
	if !mo.CanTransition(manufacturing.StatusCancelled) {
		return manufacturing.MOResponse{}, manufacturing.ErrInvalidTransition
	}

	wasInProgress := mo.Status == manufacturing.StatusInProgress
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.moRepo.SetStatus(txCtx, id, manufacturing.StatusCancelled, nil, nil); err != nil {
			return err
		}
		if wasInProgress {
			return s.orderRepo.SetInProduction(txCtx, mo.OrderID, false)
		}
		return nil
	})
	if err != nil {
		return manufacturing.MOResponse{}, err
	}

	mo.Status = manufacturing.StatusCancelled
	return toResponse(mo), nil
}

func toResponse(mo manufacturing.ManufacturingOrder) manufacturing.MOResponse {
	resp := manufacturing.MOResponse{
		ID:          mo.ID,
		OrderID:     mo.OrderID,
		OrderNumber: mo.OrderNumber,
		ClientName:  mo.ClientName,
		MONumber:    mo.MONumber,
		ProductName: mo.ProductName,
		Quantity:    mo.Quantity,
		Status:      string(mo.Status),
		Notes:       mo.Notes,
	}
	if mo.ScheduledDate != nil {
		d := mo.ScheduledDate.Format("2006-01-02")
		resp.ScheduledDate = &d
	}
	if mo.StartedAt != nil {
		t := mo.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &t
	}
	if mo.CompletedAt != nil {
		t := mo.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &t
	}
	return resp
}

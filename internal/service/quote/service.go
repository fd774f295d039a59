package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/domain/quote"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/boxline/boxline-backend-go/internal/repository/postgresql"
)

type QuoteServiceImpl struct {
	db         *database.DB
	quoteRepo  quote.QuoteRepository
	orderRepo  order.OrderRepository
	clientRepo client.ClientRepository
}

func NewQuoteService(
	db *database.DB,
	quoteRepo quote.QuoteRepository,
	orderRepo order.OrderRepository,
	clientRepo client.ClientRepository,
) quote.QuoteService {
	return &QuoteServiceImpl{
		db:         db,
		quoteRepo:  quoteRepo,
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
	}
}

func (s *QuoteServiceImpl) CreateQuote(ctx context.Context, req quote.CreateQuoteRequest) (quote.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return quote.QuoteResponse{}, err
	}

	// The client must exist; inactive clients can no longer be quoted.
	c, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return quote.QuoteResponse{}, err
	}
	if !c.IsActive {
		return quote.QuoteResponse{}, client.ErrClientNotFound
	}

	q := quote.Quote{
		ClientID:    req.ClientID,
		Description: req.Description,
		TotalValue:  req.TotalValue,
		Status:      quote.StatusDraft,
	}
	if req.ValidUntil != nil {
		d, _ := time.Parse("2006-01-02", *req.ValidUntil)
		q.ValidUntil = &d
	}

	created, err := s.quoteRepo.Create(ctx, q)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return toResponse(created), nil
}

func (s *QuoteServiceImpl) GetQuote(ctx context.Context, id string) (quote.QuoteResponse, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return quote.QuoteResponse{}, err
	}
	return toResponse(q), nil
}

func (s *QuoteServiceImpl) ListQuotes(ctx context.Context, filter quote.QuoteFilter) ([]quote.QuoteResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	quotes, total, err := s.quoteRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}

	responses := make([]quote.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		responses = append(responses, toResponse(q))
	}

	return responses, total, nil
}

func (s *QuoteServiceImpl) UpdateQuote(ctx context.Context, req quote.UpdateQuoteRequest) (quote.QuoteResponse, error) {
	q, err := s.quoteRepo.GetByID(ctx, req.ID)
	if err != nil {
		return quote.QuoteResponse{}, err
	}
	if q.Status == quote.StatusAccepted || q.Status == quote.StatusRejected {
		return quote.QuoteResponse{}, quote.ErrQuoteAlreadyProcessed
	}

	updated, err := s.quoteRepo.Update(ctx, req)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	return toResponse(updated), nil
}

func (s *QuoteServiceImpl) SendQuote(ctx context.Context, id string) (quote.QuoteResponse, error) {
	return s.setStatus(ctx, id, quote.StatusSent)
}

func (s *QuoteServiceImpl) RejectQuote(ctx context.Context, id string) (quote.QuoteResponse, error) {
	return s.setStatus(ctx, id, quote.StatusRejected)
}

// AcceptQuote flips the quote to accepted and generates the sales order
// in one transaction, so a quote can never be accepted without its
// order.
func (s *QuoteServiceImpl) AcceptQuote(ctx context.Context, id string) (quote.AcceptQuoteResponse, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return quote.AcceptQuoteResponse{}, err
	}
	if q.Status == quote.StatusAccepted || q.Status == quote.StatusRejected {
		return quote.AcceptQuoteResponse{}, quote.ErrQuoteAlreadyProcessed
	}

	var created order.Order
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.quoteRepo.SetStatus(txCtx, q.ID, quote.StatusAccepted); err != nil {
			return err
		}

		created, err = s.orderRepo.Create(txCtx, order.Order{
			ClientID:    q.ClientID,
			QuoteID:     &q.ID,
			Description: q.Description,
			TotalValue:  q.TotalValue,
		})
		if err != nil {
			return fmt.Errorf("failed to create order from quote: %w", err)
		}
		return nil
	})
	if err != nil {
		return quote.AcceptQuoteResponse{}, err
	}

	q.Status = quote.StatusAccepted
	return quote.AcceptQuoteResponse{
		Quote:   toResponse(q),
		OrderID: created.ID,
	}, nil
}

func (s *QuoteServiceImpl) setStatus(ctx context.Context, id string, status quote.Status) (quote.QuoteResponse, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return quote.QuoteResponse{}, err
	}
	if q.Status == quote.StatusAccepted || q.Status == quote.StatusRejected {
		return quote.QuoteResponse{}, quote.ErrQuoteAlreadyProcessed
	}

	if err := s.quoteRepo.SetStatus(ctx, id, status); err != nil {
		return quote.QuoteResponse{}, err
	}

	q.Status = status
	return toResponse(q), nil
}

func toResponse(q quote.Quote) quote.QuoteResponse {
	resp := quote.QuoteResponse{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		QuoteNumber: q.QuoteNumber,
		Description: q.Description,
		TotalValue:  q.TotalValue,
		Status:      string(q.Status),
	}
	if q.ValidUntil != nil {
		d := q.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &d
	}
	return resp
}

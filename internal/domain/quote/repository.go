package quote

import "context"

type QuoteRepository interface {
	Create(ctx context.Context, q Quote) (Quote, error)
	GetByID(ctx context.Context, id string) (Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]Quote, int64, error)
	Update(ctx context.Context, req UpdateQuoteRequest) (Quote, error)
	SetStatus(ctx context.Context, id string, status Status) error
}

package quote

import "context"

type QuoteService interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (QuoteResponse, error)
	GetQuote(ctx context.Context, id string) (QuoteResponse, error)
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]QuoteResponse, int64, error)
	UpdateQuote(ctx context.Context, req UpdateQuoteRequest) (QuoteResponse, error)

	// SendQuote marks a draft quote as sent to the client.
	SendQuote(ctx context.Context, id string) (QuoteResponse, error)

	// AcceptQuote marks the quote accepted and generates a sales order
	// from it in the same transaction.
	AcceptQuote(ctx context.Context, id string) (AcceptQuoteResponse, error)

	RejectQuote(ctx context.Context, id string) (QuoteResponse, error)
}

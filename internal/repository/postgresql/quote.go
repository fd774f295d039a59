package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boxline/boxline-backend-go/internal/domain/quote"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type quoteRepository struct {
	db *database.DB
}

func NewQuoteRepository(db *database.DB) quote.QuoteRepository {
	return &quoteRepository{db: db}
}

const quoteColumns = `q.id, q.client_id, q.quote_number, q.description, q.total_value, q.status, q.valid_until, q.created_at, q.updated_at, c.name`

func scanQuote(row pgx.Row) (quote.Quote, error) {
	var qt quote.Quote
	err := row.Scan(&qt.ID, &qt.ClientID, &qt.QuoteNumber, &qt.Description, &qt.TotalValue, &qt.Status, &qt.ValidUntil, &qt.CreatedAt, &qt.UpdatedAt, &qt.ClientName)
	return qt, err
}

func (r *quoteRepository) Create(ctx context.Context, qt quote.Quote) (quote.Quote, error) {
	q := GetQuerier(ctx, r.db)

	// Quote numbers come from a sequence so they are unique and ordered.
	query := `
		INSERT INTO quotes (client_id, quote_number, description, total_value, status, valid_until)
		VALUES ($1, 'Q-' || to_char(nextval('quote_number_seq'), 'FM00000'), $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, qt.ClientID, qt.Description, qt.TotalValue, qt.Status, qt.ValidUntil).Scan(&id)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (quote.Quote, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + quoteColumns + ` FROM quotes q JOIN clients c ON q.client_id = c.id WHERE q.id = $1`

	qt, err := scanQuote(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quote.Quote{}, quote.ErrQuoteNotFound
		}
		return quote.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}

	return qt, nil
}

func (r *quoteRepository) List(ctx context.Context, filter quote.QuoteFilter) ([]quote.Quote, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ClientID != nil {
		where = append(where, fmt.Sprintf("q.client_id = $%d", argIdx))
		args = append(args, *filter.ClientID)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("q.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM quotes q WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+quoteColumns+` FROM quotes q JOIN clients c ON q.client_id = c.id
		WHERE %s ORDER BY q.created_at DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, qt)
	}

	return quotes, total, nil
}

func (r *quoteRepository) Update(ctx context.Context, req quote.UpdateQuoteRequest) (quote.Quote, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.TotalValue != nil {
		setParts = append(setParts, fmt.Sprintf("total_value = $%d", argIdx))
		args = append(args, *req.TotalValue)
		argIdx++
	}
	if req.ValidUntil != nil {
		setParts = append(setParts, fmt.Sprintf("valid_until = $%d", argIdx))
		args = append(args, *req.ValidUntil)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE quotes SET %s WHERE id = $1 RETURNING id`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quote.Quote{}, quote.ErrQuoteNotFound
		}
		return quote.Quote{}, fmt.Errorf("failed to update quote: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

func (r *quoteRepository) SetStatus(ctx context.Context, id string, status quote.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE quotes SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quote.ErrQuoteNotFound
		}
		return fmt.Errorf("failed to set quote status: %w", err)
	}

	return nil
}

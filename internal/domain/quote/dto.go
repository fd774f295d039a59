package quote

import (
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateQuoteRequest struct {
	ClientID    string          `json:"client_id"`
	Description string          `json:"description"`
	TotalValue  decimal.Decimal `json:"total_value"`
	ValidUntil  *string         `json:"valid_until,omitempty"`
}

func (r *CreateQuoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.TotalValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_value", Message: "must be non-negative"})
	}
	if r.ValidUntil != nil {
		if _, ok := validator.IsValidDate(*r.ValidUntil); !ok {
			errs = append(errs, validator.ValidationError{Field: "valid_until", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQuoteRequest struct {
	ID          string
	Description *string          `json:"description,omitempty"`
	TotalValue  *decimal.Decimal `json:"total_value,omitempty"`
	ValidUntil  *string          `json:"valid_until,omitempty"`
}

type QuoteResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  *string         `json:"client_name,omitempty"`
	QuoteNumber string          `json:"quote_number"`
	Description string          `json:"description"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Status      string          `json:"status"`
	ValidUntil  *string         `json:"valid_until,omitempty"`
}

// AcceptQuoteResponse carries the sales order generated when a quote is
// accepted.
type AcceptQuoteResponse struct {
	Quote   QuoteResponse `json:"quote"`
	OrderID string        `json:"order_id"`
}

type QuoteFilter struct {
	ClientID *string
	Status   *string
	Page     int
	Limit    int
}

package order

import (
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ClientID     string          `json:"client_id"`
	QuoteID      *string         `json:"quote_id,omitempty"`
	Description  string          `json:"description"`
	TotalValue   decimal.Decimal `json:"total_value"`
	RequiredDate *string         `json:"required_date,omitempty"`
}

func (r *CreateOrderRequest) Validate() error {
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
	if r.RequiredDate != nil {
		if _, ok := validator.IsValidDate(*r.RequiredDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "required_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderRequest struct {
	ID            string
	Description   *string          `json:"description,omitempty"`
	TotalValue    *decimal.Decimal `json:"total_value,omitempty"`
	RequiredDate  *string          `json:"required_date,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
}

type OrderResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	ClientName    *string         `json:"client_name,omitempty"`
	QuoteID       *string         `json:"quote_id,omitempty"`
	OrderNumber   string          `json:"order_number"`
	Description   string          `json:"description"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Status        string          `json:"status"`
	RequiredDate  *string         `json:"required_date,omitempty"`
	InvoiceNumber *string         `json:"invoice_number,omitempty"`
	DeliveredAt   *string         `json:"delivered_at,omitempty"`
}

type OrderFilter struct {
	ClientID *string
	Status   *string // derived status filter, applied after fetch
	Page     int
	Limit    int
}

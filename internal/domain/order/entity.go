package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string
	ClientID      string
	QuoteID       *string
	OrderNumber   string
	Description   string
	TotalValue    decimal.Decimal
	IsConfirmed   bool
	IsCancelled   bool
	RequiredDate  *time.Time
	InvoiceNumber *string
	DeliveredAt   *time.Time
	InProduction  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ClientName *string
}

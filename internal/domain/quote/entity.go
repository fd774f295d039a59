package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Quote struct {
	ID          string
	ClientID    string
	QuoteNumber string
	Description string
	TotalValue  decimal.Decimal
	Status      Status
	ValidUntil  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	ClientName *string
}

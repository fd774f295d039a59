package order

// DisplayStatus is the single derived state shown for an order. It is
// computed by DeriveStatus and never stored.
type DisplayStatus string

const (
	StatusCancelled    DisplayStatus = "cancelled"
	StatusDelivered    DisplayStatus = "delivered"
	StatusInProduction DisplayStatus = "in_production"
	StatusConfirmed    DisplayStatus = "confirmed"
	StatusIncomplete   DisplayStatus = "incomplete"
	StatusNew          DisplayStatus = "new"
)

// DeriveStatus maps an order's stored flags to its display status.
// Precedence, highest first:
//
//	cancelled > delivered > in_production > confirmed > incomplete > new
//
// An order is incomplete when it has been confirmed but is missing a
// required date or carries a non-positive value, so it cannot be planned
// into production yet.
func DeriveStatus(o Order) DisplayStatus {
	switch {
	case o.IsCancelled:
		return StatusCancelled
	case o.DeliveredAt != nil:
		return StatusDelivered
	case o.InProduction:
		return StatusInProduction
	case o.IsConfirmed && (o.RequiredDate == nil || !o.TotalValue.IsPositive()):
		return StatusIncomplete
	case o.IsConfirmed:
		return StatusConfirmed
	default:
		return StatusNew
	}
}

package manufacturing

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ManufacturingOrder is a production work order generated from a
// confirmed client order. ScheduledDate is nil until the order is placed
// on the production calendar.
type ManufacturingOrder struct {
	ID            string
	OrderID       string
	MONumber      string
	ProductName   string
	Quantity      int
	Status        Status
	ScheduledDate *time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	OrderNumber *string
	ClientName  *string
}

// CanTransition reports whether the order may move to the target status.
// Scheduling and unscheduling are handled separately through
// AssignScheduledDate because they also move the calendar date.
func (m ManufacturingOrder) CanTransition(target Status) bool {
	switch target {
	case StatusInProgress:
		return m.Status == StatusScheduled
	case StatusCompleted:
		return m.Status == StatusInProgress
	case StatusCancelled:
		return m.Status != StatusCompleted && m.Status != StatusCancelled
	default:
		return false
	}
}

package delivery

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// DeliveryNumber is issued from a database sequence inside the insert
// transaction so numbers are gapless per insert and never collide.
type Delivery struct {
	ID             string
	OrderID        string
	DeliveryNumber int64
	DriverID       string
	VehicleID      string
	DeliveryDate   time.Time
	Address        string
	Status         Status
	DeliveredAt    *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	OrderNumber *string
	ClientName  *string
	DriverName  *string
	VehicleRego *string
}

type Driver struct {
	ID        string
	FullName  string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vehicle struct {
	ID           string
	Registration string
	Description  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

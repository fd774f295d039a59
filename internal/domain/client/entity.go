package client

import "time"

// Client is a CRM record for a packaging customer. Clients are never
// deleted, only deactivated, because orders and quotes keep referencing
// them.
type Client struct {
	ID            string
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	Notes         *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

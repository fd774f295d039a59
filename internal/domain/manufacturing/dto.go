package manufacturing

import "github.com/boxline/boxline-backend-go/internal/pkg/validator"

type CreateMORequest struct {
	OrderID     string  `json:"order_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateMORequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrderID) {
		errs = append(errs, validator.ValidationError{Field: "order_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ProductName) {
		errs = append(errs, validator.ValidationError{Field: "product_name", Message: "is required"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScheduleMORequest is the calendar drag-drop payload: a nil date takes
// the order back off the calendar.
type ScheduleMORequest struct {
	ID            string
	ScheduledDate *string `json:"scheduled_date"`
}

func (r *ScheduleMORequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ScheduledDate != nil {
		if _, ok := validator.IsValidDate(*r.ScheduledDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "scheduled_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MOResponse struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	OrderNumber   *string `json:"order_number,omitempty"`
	ClientName    *string `json:"client_name,omitempty"`
	MONumber      string  `json:"mo_number"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	Status        string  `json:"status"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	StartedAt     *string `json:"started_at,omitempty"`
	CompletedAt   *string `json:"completed_at,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type MOFilter struct {
	Status   *string
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

package delivery

import "github.com/boxline/boxline-backend-go/internal/pkg/validator"

type ScheduleDeliveryRequest struct {
	OrderID      string  `json:"order_id"`
	DriverID     string  `json:"driver_id"`
	VehicleID    string  `json:"vehicle_id"`
	DeliveryDate string  `json:"delivery_date"`
	Address      string  `json:"address"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *ScheduleDeliveryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrderID) {
		errs = append(errs, validator.ValidationError{Field: "order_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "is required"})
	}
	if validator.IsEmpty(r.VehicleID) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.DeliveryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "delivery_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeliveryRequest struct {
	ID           string
	DriverID     *string `json:"driver_id,omitempty"`
	VehicleID    *string `json:"vehicle_id,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`
	Address      *string `json:"address,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type DeliveryResponse struct {
	ID             string  `json:"id"`
	OrderID        string  `json:"order_id"`
	OrderNumber    *string `json:"order_number,omitempty"`
	ClientName     *string `json:"client_name,omitempty"`
	DeliveryNumber int64   `json:"delivery_number"`
	DriverID       string  `json:"driver_id"`
	DriverName     *string `json:"driver_name,omitempty"`
	VehicleID      string  `json:"vehicle_id"`
	VehicleRego    *string `json:"vehicle_rego,omitempty"`
	DeliveryDate   string  `json:"delivery_date"`
	Address        string  `json:"address"`
	Status         string  `json:"status"`
	DeliveredAt    *string `json:"delivered_at,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type DeliveryFilter struct {
	Status   *string
	DriverID *string
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

type DriverResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
}

type VehicleResponse struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	Description  *string `json:"description,omitempty"`
	IsActive     bool    `json:"is_active"`
}

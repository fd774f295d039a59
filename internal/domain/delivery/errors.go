package delivery

import "errors"

var (
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrDeliveryFinalized = errors.New("delivery already delivered or cancelled")
	ErrOrderHasDelivery  = errors.New("order already has a scheduled delivery")
)

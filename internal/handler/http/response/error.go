package response

import (
	"errors"
	"net/http"

	"github.com/boxline/boxline-backend-go/internal/domain/auth"
	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/domain/delivery"
	"github.com/boxline/boxline-backend-go/internal/domain/employee"
	"github.com/boxline/boxline-backend-go/internal/domain/manufacturing"
	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/boxline/boxline-backend-go/internal/domain/quote"
	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/boxline/boxline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists")

	// Quote domain errors
	case errors.Is(err, quote.ErrQuoteNotFound):
		NotFound(w, "Quote not found")
	case errors.Is(err, quote.ErrQuoteAlreadyProcessed):
		Conflict(w, "Quote already accepted or rejected")

	// Order domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrOrderAlreadyConfirmed):
		Conflict(w, "Order already confirmed")
	case errors.Is(err, order.ErrOrderCancelled):
		Conflict(w, "Order is cancelled")
	case errors.Is(err, order.ErrOrderNotConfirmed):
		BadRequest(w, "Order must be confirmed first", nil)

	// Manufacturing domain errors
	case errors.Is(err, manufacturing.ErrMONotFound):
		NotFound(w, "Manufacturing order not found")
	case errors.Is(err, manufacturing.ErrMOAlreadyExists):
		Conflict(w, "Manufacturing order already exists for this order")
	case errors.Is(err, manufacturing.ErrOrderNotConfirmed):
		BadRequest(w, "Order must be confirmed before creating a manufacturing order", nil)
	case errors.Is(err, manufacturing.ErrInvalidTransition):
		Conflict(w, "Invalid manufacturing order status transition")
	case errors.Is(err, manufacturing.ErrScheduleInPast):
		BadRequest(w, "Scheduled date cannot be in the past", nil)
	case errors.Is(err, manufacturing.ErrMONotOnCalendar):
		BadRequest(w, "Manufacturing order must be scheduled first", nil)
	case errors.Is(err, manufacturing.ErrMOAlreadyInProgress):
		Conflict(w, "Manufacturing order already in progress")

	// Delivery domain errors
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		NotFound(w, "Delivery not found")
	case errors.Is(err, delivery.ErrDriverNotFound):
		NotFound(w, "Driver not found")
	case errors.Is(err, delivery.ErrVehicleNotFound):
		NotFound(w, "Vehicle not found")
	case errors.Is(err, delivery.ErrDeliveryFinalized):
		Conflict(w, "Delivery already delivered or cancelled")
	case errors.Is(err, delivery.ErrOrderHasDelivery):
		Conflict(w, "Order already has a scheduled delivery")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrClockNumberTaken):
		Conflict(w, "Clock number already in use")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrUnknownClockNumber):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodAlreadyCommitted):
		Conflict(w, "Payroll already committed for this period")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrLoanNotFound):
		NotFound(w, "Employee loan not found")
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "No active employees to run payroll for", nil)
	case errors.Is(err, payroll.ErrUnknownEmployee):
		BadRequest(w, "Override references an unknown employee", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/delivery"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeliveryHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	MarkDelivered(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ListDrivers(w http.ResponseWriter, r *http.Request)
	ListVehicles(w http.ResponseWriter, r *http.Request)
}

type deliveryHandlerImpl struct {
	deliveryService delivery.DeliveryService
}

func NewDeliveryHandler(deliveryService delivery.DeliveryService) DeliveryHandler {
	return &deliveryHandlerImpl{deliveryService: deliveryService}
}

// Schedule handles POST /deliveries
func (h *deliveryHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	var req delivery.ScheduleDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deliveryService.ScheduleDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delivery scheduled", result)
}

// Get handles GET /deliveries/{id}
func (h *deliveryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.deliveryService.GetDelivery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /deliveries
func (h *deliveryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter delivery.DeliveryFilter
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("driver_id"); v != "" {
		filter.DriverID = &v
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		filter.DateTo = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.deliveryService.ListDeliveries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// Update handles PUT /deliveries/{id}
func (h *deliveryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req delivery.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.deliveryService.UpdateDelivery(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Start handles POST /deliveries/{id}/start
func (h *deliveryHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.deliveryService.StartDelivery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery in transit", result)
}

// MarkDelivered handles POST /deliveries/{id}/delivered
func (h *deliveryHandlerImpl) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	result, err := h.deliveryService.MarkDelivered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery completed", result)
}

// Cancel handles POST /deliveries/{id}/cancel
func (h *deliveryHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := h.deliveryService.CancelDelivery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery cancelled", result)
}

// ListDrivers handles GET /deliveries/drivers
func (h *deliveryHandlerImpl) ListDrivers(w http.ResponseWriter, r *http.Request) {
	results, err := h.deliveryService.ListDrivers(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListVehicles handles GET /deliveries/vehicles
func (h *deliveryHandlerImpl) ListVehicles(w http.ResponseWriter, r *http.Request) {
	results, err := h.deliveryService.ListVehicles(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

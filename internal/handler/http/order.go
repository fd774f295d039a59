package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/order"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	orderService order.OrderService
}

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandlerImpl{orderService: orderService}
}

// Create handles POST /orders
func (h *orderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", result)
}

// Get handles GET /orders/{id}
func (h *orderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /orders
func (h *orderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter order.OrderFilter
	if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// Update handles PUT /orders/{id}
func (h *orderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req order.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.orderService.UpdateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Confirm handles POST /orders/{id}/confirm
func (h *orderHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.ConfirmOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order confirmed", result)
}

// Cancel handles POST /orders/{id}/cancel
func (h *orderHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order cancelled", result)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/manufacturing"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ManufacturingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type manufacturingHandlerImpl struct {
	moService manufacturing.MOService
}

func NewManufacturingHandler(moService manufacturing.MOService) ManufacturingHandler {
	return &manufacturingHandlerImpl{moService: moService}
}

// Create handles POST /manufacturing-orders
func (h *manufacturingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req manufacturing.CreateMORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.moService.CreateMO(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manufacturing order created", result)
}

// Get handles GET /manufacturing-orders/{id}
func (h *manufacturingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.moService.GetMO(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /manufacturing-orders
func (h *manufacturingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter manufacturing.MOFilter
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		filter.DateTo = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.moService.ListMOs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// Calendar handles GET /manufacturing-orders/calendar?from=...&to=...
func (h *manufacturingHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	results, err := h.moService.Calendar(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Schedule handles PUT /manufacturing-orders/{id}/schedule
func (h *manufacturingHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	var req manufacturing.ScheduleMORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.moService.ScheduleMO(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Start handles POST /manufacturing-orders/{id}/start
func (h *manufacturingHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.moService.StartMO(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production started", result)
}

// Complete handles POST /manufacturing-orders/{id}/complete
func (h *manufacturingHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.moService.CompleteMO(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production completed", result)
}

// Cancel handles POST /manufacturing-orders/{id}/cancel
func (h *manufacturingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	result, err := h.moService.CancelMO(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manufacturing order cancelled", result)
}

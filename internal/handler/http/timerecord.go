package http

import (
	"encoding/json"
	"net/http"

	"github.com/boxline/boxline-backend-go/internal/domain/timerecord"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeRecordHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

// Upload handles POST /time-records/upload
func (h *timeRecordHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	var req timerecord.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeRecordService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time records uploaded", result)
}

// List handles GET /time-records?from=...&to=...
func (h *timeRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	results, err := h.timeRecordService.ListRecords(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee handles GET /time-records/{clockNumber}?from=...&to=...
func (h *timeRecordHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	results, err := h.timeRecordService.ListEmployeeRecords(r.Context(), chi.URLParam(r, "clockNumber"), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

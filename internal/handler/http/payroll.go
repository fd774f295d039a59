package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/payroll"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ResolvePeriods(w http.ResponseWriter, r *http.Request)
	Run(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	CreateLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ResolvePeriods handles GET /payroll/periods/resolve
func (h *payrollHandlerImpl) ResolvePeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ResolvePeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Run handles POST /payroll/run
func (h *payrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Commit handles POST /payroll/commit
func (h *payrollHandlerImpl) Commit(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CommitPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll committed", result)
}

// ListPeriods handles GET /payroll/periods
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.payrollService.ListPeriods(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetPeriod handles GET /payroll/periods/{id}
func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetCommittedPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportExcel handles GET /payroll/periods/{id}/export/excel
func (h *payrollHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	filename, content, err := h.payrollService.ExportPeriodExcel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// ExportPDF handles GET /payroll/periods/{id}/export/pdf
func (h *payrollHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	filename, content, err := h.payrollService.ExportPeriodPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, "application/pdf", content)
}

// CreateLoan handles POST /payroll/loans
func (h *payrollHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreateLoan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", result)
}

// ListLoans handles GET /payroll/loans
func (h *payrollHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	results, err := h.payrollService.ListLoans(r.Context(), employeeID, r.URL.Query().Get("active") == "true")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetSettings handles GET /payroll/settings
func (h *payrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings handles PUT /payroll/settings
func (h *payrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

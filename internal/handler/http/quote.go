package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/quote"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type QuoteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type quoteHandlerImpl struct {
	quoteService quote.QuoteService
}

func NewQuoteHandler(quoteService quote.QuoteService) QuoteHandler {
	return &quoteHandlerImpl{quoteService: quoteService}
}

// Create handles POST /quotes
func (h *quoteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req quote.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.quoteService.CreateQuote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Quote created", result)
}

// Get handles GET /quotes/{id}
func (h *quoteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.GetQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /quotes
func (h *quoteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter quote.QuoteFilter
	if v := r.URL.Query().Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.quoteService.ListQuotes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// Update handles PUT /quotes/{id}
func (h *quoteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req quote.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.quoteService.UpdateQuote(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Send handles POST /quotes/{id}/send
func (h *quoteHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.SendQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote sent", result)
}

// Accept handles POST /quotes/{id}/accept
func (h *quoteHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.AcceptQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote accepted and order created", result)
}

// Reject handles POST /quotes/{id}/reject
func (h *quoteHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.quoteService.RejectQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quote rejected", result)
}

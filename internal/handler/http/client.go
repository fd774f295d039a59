package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &clientHandlerImpl{clientService: clientService}
}

// Create handles POST /clients
func (h *clientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.clientService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", result)
}

// Get handles GET /clients/{id}
func (h *clientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.clientService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /clients
func (h *clientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := client.ClientFilter{
		Search:     r.URL.Query().Get("search"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.clientService.ListClients(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(filter.Page, filter.Limit, total))
}

// Update handles PUT /clients/{id}
func (h *clientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate handles DELETE /clients/{id}
func (h *clientHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.clientService.DeactivateClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deactivated", nil)
}

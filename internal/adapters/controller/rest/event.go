package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles POST /events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EventCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	claims := ClaimsFromContext(r.Context())
	event, err := h.eventService.Create(r.Context(), claims.UserID(), claims.Role, req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// List handles GET /events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	filter := dto.EventFilter{
		Status: r.URL.Query().Get("status"),
		Club:   r.URL.Query().Get("club"),
		Type:   r.URL.Query().Get("type"),
	}

	events, err := h.eventService.List(r.Context(), claims.UserID(), claims.Role, filter)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// Get handles GET /events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Update handles PUT /events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.EventUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	claims := ClaimsFromContext(r.Context())
	event, err := h.eventService.Update(r.Context(), claims.UserID(), claims.Role, chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// UpdateStatus handles PATCH /events/{id}/status
func (h *EventHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.eventService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	err := h.eventService.Delete(r.Context(), claims.UserID(), claims.Role, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

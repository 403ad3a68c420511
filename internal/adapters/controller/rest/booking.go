package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BookingCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	claims := ClaimsFromContext(r.Context())
	booking, err := h.bookingService.Create(r.Context(), claims.UserID(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

// List handles GET /bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	bookings, err := h.bookingService.List(r.Context(), claims.UserID(), claims.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

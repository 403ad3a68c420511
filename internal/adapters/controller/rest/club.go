package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type ClubHandler struct {
	clubService *service.ClubService
}

func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// Create handles POST /clubs
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClubCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	club, err := h.clubService.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, club)
}

// List handles GET /clubs
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clubs)
}

// Join handles POST /clubs/{id}/join
func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	club, err := h.clubService.Join(r.Context(), claims.UserID(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}

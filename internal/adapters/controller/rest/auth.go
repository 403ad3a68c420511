package rest

import (
	"net/http"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.Register
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.userService.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.Login
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.userService.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	user, err := h.userService.Get(r.Context(), claims.UserID())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

package rest

import (
	"net/http"
	"strconv"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type ResourceHandler struct {
	resourceService *service.ResourceService
}

func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// Create handles POST /resources
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ResourceCreate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resource, err := h.resourceService.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

// List handles GET /resources
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := dto.ResourceFilter{
		Type: r.URL.Query().Get("type"),
	}
	if raw := r.URL.Query().Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	resources, err := h.resourceService.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resources)
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/api/internal/domain/entity"
	"github.com/campushub/api/internal/domain/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	notifications, err := h.notificationService.List(r.Context(), claims.UserID(), claims.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	if notifications == nil {
		notifications = []entity.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead handles PATCH /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	notification, err := h.notificationService.MarkRead(r.Context(), claims.UserID(), claims.Role, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notification)
}

package rest

import (
	"net/http"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.MessageSend
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	claims := ClaimsFromContext(r.Context())
	message, err := h.messageService.Send(r.Context(), claims.UserID(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

// List handles GET /messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	filter := dto.MessageFilter{
		ClubID:  r.URL.Query().Get("clubId"),
		EventID: r.URL.Query().Get("eventId"),
	}

	messages, err := h.messageService.List(r.Context(), claims.UserID(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

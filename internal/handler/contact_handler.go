package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adore/backend/internal/model"
	"github.com/adore/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles the marketing site's contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
// email and message are required; the rest is optional; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	if err := h.contactService.Submit(r.Context(), &req); err != nil {
		slog.Error("contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"ok": "true"})
}

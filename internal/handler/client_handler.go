package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/adore/backend/internal/model"
)

// ClientLister is the subset of ClientRepository the list endpoint needs.
type ClientLister interface {
	List(ctx context.Context) ([]*model.Client, error)
}

// ClientHandler handles GET /api/clients.
type ClientHandler struct {
	clients ClientLister
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(clients ClientLister) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients, ordered by name.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		slog.Error("client list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if clients == nil {
		clients = []*model.Client{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

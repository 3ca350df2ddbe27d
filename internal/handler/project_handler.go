package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/adore/backend/internal/model"
)

// ProjectLister is the subset of ProjectRepository the list endpoint needs.
type ProjectLister interface {
	List(ctx context.Context) ([]*model.Project, error)
}

// ProjectHandler handles GET /api/projects.
type ProjectHandler struct {
	projects ProjectLister
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects ProjectLister) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/projects, ordered by name.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

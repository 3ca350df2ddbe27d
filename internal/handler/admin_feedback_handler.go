package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adore/backend/internal/filter"
	"github.com/adore/backend/internal/model"
	"github.com/adore/backend/internal/repository"
	"github.com/adore/backend/internal/service"
	"github.com/adore/backend/internal/stats"
	"github.com/go-chi/chi/v5"
)

// AdminFeedbackHandler serves the admin dashboard: the filtered feedback
// list, the aggregate statistics, and the review toggle.
type AdminFeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewAdminFeedbackHandler creates an AdminFeedbackHandler with the given service.
func NewAdminFeedbackHandler(feedbackService service.FeedbackService) *AdminFeedbackHandler {
	return &AdminFeedbackHandler{feedbackService: feedbackService}
}

// criteriaFromQuery reads the dashboard filter state from query parameters.
// Absent parameters leave their criterion unconstrained.
func criteriaFromQuery(r *http.Request) filter.Criteria {
	q := r.URL.Query()
	return filter.Criteria{
		ProjectID:    q.Get("project_id"),
		ClientID:     q.Get("client_id"),
		Rating:       q.Get("rating"),
		Tag:          q.Get("tag"),
		ReviewStatus: q.Get("review_status"),
		SearchTerm:   q.Get("q"),
	}
}

// listResponse is the JSON response for GET /api/admin/feedback.
type listResponse struct {
	Feedback []*model.Feedback `json:"feedback"`
	Total    int               `json:"total"` // size of the unfiltered collection
}

// List handles GET /api/admin/feedback.
// Supports query params: project_id, client_id, rating, tag, review_status, q.
// Filtering happens in memory over the full collection, preserving the
// repository's most-recent-first order.
func (h *AdminFeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.feedbackService.Dashboard(r.Context())
	if err != nil {
		slog.Error("dashboard load failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "load_failed")
		return
	}

	names := filter.BuildNameIndex(data.Projects, data.Clients)
	visible := filter.Apply(data.Feedback, criteriaFromQuery(r), names)

	// Return [] not null for empty lists
	if visible == nil {
		visible = []*model.Feedback{}
	}

	writeJSON(w, http.StatusOK, listResponse{Feedback: visible, Total: len(data.Feedback)})
}

// statsResponse is the JSON response for GET /api/admin/feedback/stats.
type statsResponse struct {
	Summary         stats.Summary        `json:"summary"`
	MonthlySeries   []stats.MonthlyPoint `json:"monthly_series"`
	ProjectAverages map[string]float64   `json:"project_averages"`
	ClientAverages  map[string]float64   `json:"client_averages"`
}

// Stats handles GET /api/admin/feedback/stats.
// All figures derive from the same dashboard snapshot, so the summary, the
// series and the per-entity averages are always mutually consistent.
func (h *AdminFeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	data, err := h.feedbackService.Dashboard(r.Context())
	if err != nil {
		slog.Error("dashboard load failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "load_failed")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Summary:         stats.Summarize(data.Feedback),
		MonthlySeries:   stats.MonthlySeries(data.Feedback),
		ProjectAverages: stats.ProjectAverages(data.Feedback),
		ClientAverages:  stats.ClientAverages(data.Feedback),
	})
}

// toggleReviewRequest is the expected JSON body for the review toggle:
// the review status the client currently displays, which gets negated.
type toggleReviewRequest struct {
	Current bool `json:"current"`
}

// ToggleReview handles PATCH /api/admin/feedback/{id}/review.
// Responds 409 when a toggle for the same record is still in flight and 404
// for unknown ids; on failure the stored state is untouched.
func (h *AdminFeedbackHandler) ToggleReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req toggleReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	reviewed, err := h.feedbackService.ToggleReviewed(r.Context(), id, req.Current)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrToggleInFlight):
			writeError(w, http.StatusConflict, "toggle_in_flight")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("review toggle failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "update_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "reviewed": reviewed})
}

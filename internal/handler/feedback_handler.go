package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adore/backend/internal/model"
	"github.com/adore/backend/internal/service"
	"github.com/adore/backend/internal/tags"
)

const maxCommentsLength = 5000

// FeedbackHandler handles public feedback submission.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler with the given service.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// submitFeedbackRequest is the expected JSON body for POST /api/feedback.
// Tags arrive as a list and are encoded to the stored delimited form here.
type submitFeedbackRequest struct {
	ProjectID string   `json:"project_id"`
	ClientID  string   `json:"client_id"`
	Rating    int      `json:"rating"`
	Comments  string   `json:"comments"`
	Tags      []string `json:"tags"`
}

// Submit handles POST /api/feedback.
// project_id, client_id, comments and a 1–5 rating are required; tags are
// optional.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.ProjectID == "" {
		writeError(w, http.StatusBadRequest, "project_required")
		return
	}
	if req.ClientID == "" {
		writeError(w, http.StatusBadRequest, "client_required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating_out_of_range")
		return
	}
	if req.Comments == "" {
		writeError(w, http.StatusBadRequest, "comments_required")
		return
	}
	if len([]rune(req.Comments)) > maxCommentsLength {
		writeError(w, http.StatusBadRequest, "comments_too_long")
		return
	}

	fb := &model.Feedback{
		ProjectID: req.ProjectID,
		ClientID:  req.ClientID,
		Rating:    req.Rating,
		Comments:  req.Comments,
		Tags:      tags.Encode(req.Tags),
	}

	if err := h.feedbackService.Submit(r.Context(), fb); err != nil {
		slog.Error("feedback submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"feedback": fb})
}

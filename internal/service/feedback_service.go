package service

import (
	"context"
	"errors"

	"github.com/adore/backend/internal/model"
)

// ErrToggleInFlight is returned when a review toggle is requested for a
// record whose previous toggle has not completed yet.
var ErrToggleInFlight = errors.New("review toggle already in flight for this record")

// DashboardData is the consistent snapshot the admin dashboard derives all
// of its views from: the feedback collection plus the two name-lookup tables.
type DashboardData struct {
	Feedback []*model.Feedback
	Projects []*model.Project
	Clients  []*model.Client
}

// FeedbackService defines the business logic around feedback records.
type FeedbackService interface {
	// Submit stores a new feedback record. ID, CreatedAt and the initial
	// review state are populated by the implementation.
	Submit(ctx context.Context, fb *model.Feedback) error

	// Dashboard loads feedback, projects and clients together. The three
	// fetches run concurrently and the load is all-or-nothing: if any fails,
	// an error is returned and no partial data is exposed.
	Dashboard(ctx context.Context) (*DashboardData, error)

	// ToggleReviewed flips a record's reviewed flag to the negation of
	// current and returns the new value. A second toggle on the same record
	// while one is pending fails with ErrToggleInFlight.
	ToggleReviewed(ctx context.Context, id string, current bool) (bool, error)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/adore/backend/internal/model"
	"github.com/adore/backend/internal/notify"
	"github.com/adore/backend/internal/repository"
	"github.com/adore/backend/internal/tags"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// feedbackServiceImpl is the production implementation of FeedbackService.
type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	projectRepo  repository.ProjectRepository
	clientRepo   repository.ClientRepository
	notifier     notify.Notifier

	mu       sync.Mutex
	inFlight map[string]struct{} // record ids with a pending review toggle
}

// NewFeedbackService creates a FeedbackService backed by the given
// repositories and notifier.
func NewFeedbackService(
	fr repository.FeedbackRepository,
	pr repository.ProjectRepository,
	cr repository.ClientRepository,
	n notify.Notifier,
) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: fr,
		projectRepo:  pr,
		clientRepo:   cr,
		notifier:     n,
		inFlight:     make(map[string]struct{}),
	}
}

// Submit stores a new feedback record, assigning its id and timestamp, and
// publishes an admin notification. Notification errors are swallowed so they
// never break the submission flow.
func (s *feedbackServiceImpl) Submit(ctx context.Context, fb *model.Feedback) error {
	fb.ID = uuid.NewString()
	fb.Reviewed = false
	fb.CreatedAt = time.Now().UTC()

	if err := s.feedbackRepo.Insert(ctx, fb); err != nil {
		return err
	}

	if err := s.notifier.Publish(ctx, formatFeedbackNotification(fb)); err != nil {
		slog.Warn("feedback notification failed", "id", fb.ID, "error", err)
	}
	return nil
}

// Dashboard fetches feedback, projects and clients concurrently. All three
// must succeed; a single failure fails the whole load so the caller never
// renders statistics against partial name tables.
func (s *feedbackServiceImpl) Dashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.feedbackRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load feedback: %w", err)
		}
		data.Feedback = items
		return nil
	})
	g.Go(func() error {
		projects, err := s.projectRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		data.Projects = projects
		return nil
	})
	g.Go(func() error {
		clients, err := s.clientRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("load clients: %w", err)
		}
		data.Clients = clients
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// ToggleReviewed writes the negated review flag through the repository.
// A per-record in-flight marker rejects overlapping toggles on the same id,
// preventing lost updates from a double-click.
func (s *feedbackServiceImpl) ToggleReviewed(ctx context.Context, id string, current bool) (bool, error) {
	s.mu.Lock()
	if _, pending := s.inFlight[id]; pending {
		s.mu.Unlock()
		return current, ErrToggleInFlight
	}
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}()

	next := !current
	if err := s.feedbackRepo.UpdateReviewStatus(ctx, id, next); err != nil {
		return current, err
	}
	return next, nil
}

// formatFeedbackNotification renders the webhook message for new feedback.
func formatFeedbackNotification(fb *model.Feedback) string {
	stars := strings.Repeat("★", fb.Rating) + strings.Repeat("☆", 5-fb.Rating)
	var b strings.Builder
	b.WriteString("New feedback received\n")
	b.WriteString("Rating: " + stars + "\n")
	if decoded := tags.Decode(fb.Tags); len(decoded) > 0 {
		labels := make([]string, len(decoded))
		for i, id := range decoded {
			labels[i] = tags.Label(id)
		}
		b.WriteString("Tags: " + strings.Join(labels, ", ") + "\n")
	}
	b.WriteString("Comments: " + fb.Comments)
	return b.String()
}

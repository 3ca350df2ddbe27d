package repository

import (
	"context"

	"github.com/adore/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackRepository defines the persistence interface for feedback records.
// It is defined here (in repository) to avoid an import cycle with service.
type FeedbackRepository interface {
	// List returns all feedback, most recent first.
	List(ctx context.Context) ([]*model.Feedback, error)
	// Insert stores a new feedback record with the fields already populated
	// by the caller (including ID and CreatedAt).
	Insert(ctx context.Context, fb *model.Feedback) error
	// UpdateReviewStatus sets the reviewed flag of a single record.
	// Returns ErrNotFound when no record has the given id.
	UpdateReviewStatus(ctx context.Context, id string, reviewed bool) error
}

// PgFeedbackRepository is the PostgreSQL implementation of FeedbackRepository.
type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPgFeedbackRepository creates a PgFeedbackRepository backed by the given pool.
func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

var _ FeedbackRepository = (*PgFeedbackRepository)(nil)

// List returns every feedback row ordered most-recent-first. A NULL tags
// column is normalized to the empty string so the tag codec only ever sees
// strings.
func (r *PgFeedbackRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, client_id, rating, comments, COALESCE(tags, ''), reviewed, created_at
		 FROM feedback
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.Feedback
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.ClientID, &f.Rating, &f.Comments, &f.Tags, &f.Reviewed, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &f)
	}
	return items, rows.Err()
}

// Insert stores a new feedback row. Empty tags are stored as NULL to match
// the historical schema convention.
func (r *PgFeedbackRepository) Insert(ctx context.Context, fb *model.Feedback) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO feedback (id, project_id, client_id, rating, comments, tags, reviewed, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`,
		fb.ID, fb.ProjectID, fb.ClientID, fb.Rating, fb.Comments, fb.Tags, fb.Reviewed, fb.CreatedAt,
	)
	return err
}

// UpdateReviewStatus flips the reviewed flag of one record and nothing else.
func (r *PgFeedbackRepository) UpdateReviewStatus(ctx context.Context, id string, reviewed bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE feedback SET reviewed = $1 WHERE id = $2`, reviewed, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

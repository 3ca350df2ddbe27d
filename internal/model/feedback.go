package model

import "time"

// Feedback is a single client rating of a delivered project.
// Tags holds the comma-delimited tag ids as stored; use the tags package
// to decode them into a slice.
type Feedback struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	ClientID  string    `json:"client_id"`
	Rating    int       `json:"rating"` // 1-5, validated at the submit boundary
	Comments  string    `json:"comments"`
	Tags      string    `json:"tags"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import "time"

// Project is a delivered piece of client work that feedback can reference.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tools       string    `json:"tools,omitempty"` // comma-separated stack summary for display
	CreatedAt   time.Time `json:"created_at"`
}

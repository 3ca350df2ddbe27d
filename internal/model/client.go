package model

import "time"

// Client is a customer that feedback records and projects belong to.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

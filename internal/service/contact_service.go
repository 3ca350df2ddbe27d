package service

import (
	"context"

	"github.com/adore/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit forwards a contact request to the studio inbox.
	Submit(ctx context.Context, req *model.ContactRequest) error
}

package service

import (
	"context"

	"github.com/devsolutions/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission. c.ID and c.SubmittedAt are populated
	// by the implementation; is_read always starts false.
	Submit(ctx context.Context, c *model.ContactSubmission) error

	// List returns every submission, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)

	// MarkRead sets the read flag. Returns repository.ErrNotFound for an unknown id.
	MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error)
}

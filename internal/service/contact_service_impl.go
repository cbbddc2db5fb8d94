package service

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Submit(ctx context.Context, c *model.ContactSubmission) error {
	c.IsRead = false
	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("submit contact: %w", err)
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error) {
	return s.repo.MarkRead(ctx, id, isRead)
}

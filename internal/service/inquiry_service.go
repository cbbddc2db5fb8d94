package service

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// InquiryService handles project inquiries.
type InquiryService interface {
	// Submit stores a new inquiry with status "new".
	Submit(ctx context.Context, i *model.ProjectInquiry) error
	List(ctx context.Context) ([]*model.ProjectInquiry, error)
	// UpdateStatus is the operator's only way to move an inquiry along.
	UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error)
}

type inquiryService struct {
	repo repository.InquiryRepository
}

// NewInquiryService creates an InquiryService.
func NewInquiryService(repo repository.InquiryRepository) InquiryService {
	return &inquiryService{repo: repo}
}

func (s *inquiryService) Submit(ctx context.Context, i *model.ProjectInquiry) error {
	i.Status = model.InquiryStatusNew
	if err := s.repo.Create(ctx, i); err != nil {
		return fmt.Errorf("submit inquiry: %w", err)
	}
	return nil
}

func (s *inquiryService) List(ctx context.Context) ([]*model.ProjectInquiry, error) {
	return s.repo.List(ctx)
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid inquiry status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

package service

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// TestimonialService provides access to client testimonials.
type TestimonialService interface {
	List(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error)
	// Create stores t, defaulting Rating to model.DefaultRating when unset.
	Create(ctx context.Context, t *model.Testimonial) error
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) List(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error) {
	return s.repo.List(ctx, filter)
}

func (s *testimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	if t.Rating == 0 {
		t.Rating = model.DefaultRating
	}
	if !t.Rating.Valid() {
		return fmt.Errorf("rating %d out of range", t.Rating)
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

package memstore

import (
	"context"
	"time"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type testimonialRepo struct{ s *Store }

var _ repository.TestimonialRepository = testimonialRepo{}

func cloneTestimonial(t model.Testimonial) *model.Testimonial {
	t.ClientPosition = copyStr(t.ClientPosition)
	t.Company = copyStr(t.Company)
	t.ImageURL = copyStr(t.ImageURL)
	return &t
}

func (r testimonialRepo) Create(_ context.Context, t *model.Testimonial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.allocID("testimonials")
	t.CreatedAt = r.s.clock.Now()
	if t.Rating == 0 {
		t.Rating = model.DefaultRating
	}
	r.s.testimonials = append(r.s.testimonials, *cloneTestimonial(*t))
	return nil
}

func (r testimonialRepo) List(_ context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*model.Testimonial{}
	for _, t := range r.s.testimonials {
		if filter.FeaturedOnly && !t.Featured {
			continue
		}
		out = append(out, cloneTestimonial(t))
	}
	newestFirst(out,
		func(t *model.Testimonial) time.Time { return t.CreatedAt },
		func(t *model.Testimonial) int64 { return t.ID })
	return out, nil
}

func (r testimonialRepo) GetByID(_ context.Context, id int64) (*model.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.testimonials {
		if t.ID == id {
			return cloneTestimonial(t), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r testimonialRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.testimonials), nil
}

func (r testimonialRepo) CountFeatured(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, t := range r.s.testimonials {
		if t.Featured {
			n++
		}
	}
	return n, nil
}

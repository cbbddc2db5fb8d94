package memstore

import (
	"context"
	"time"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type newsletterRepo struct{ s *Store }

var _ repository.NewsletterRepository = newsletterRepo{}

func (r newsletterRepo) Create(_ context.Context, sub *model.NewsletterSubscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.newsletter {
		if existing.Email == sub.Email {
			return repository.ErrDuplicate
		}
	}
	sub.ID = r.s.allocID("newsletter")
	sub.SubscribedAt = r.s.clock.Now()
	sub.IsActive = true
	r.s.newsletter = append(r.s.newsletter, *sub)
	return nil
}

func (r newsletterRepo) List(_ context.Context) ([]*model.NewsletterSubscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.NewsletterSubscription, 0, len(r.s.newsletter))
	for _, sub := range r.s.newsletter {
		sub := sub
		out = append(out, &sub)
	}
	newestFirst(out,
		func(s *model.NewsletterSubscription) time.Time { return s.SubscribedAt },
		func(s *model.NewsletterSubscription) int64 { return s.ID })
	return out, nil
}

func (r newsletterRepo) GetByEmail(_ context.Context, email string) (*model.NewsletterSubscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, sub := range r.s.newsletter {
		if sub.Email == email {
			sub := sub
			return &sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r newsletterRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.newsletter {
		if r.s.newsletter[i].ID == id {
			r.s.newsletter[i].IsActive = active
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r newsletterRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.newsletter), nil
}

func (r newsletterRepo) CountActive(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, sub := range r.s.newsletter {
		if sub.IsActive {
			n++
		}
	}
	return n, nil
}

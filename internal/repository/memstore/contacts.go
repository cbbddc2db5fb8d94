package memstore

import (
	"context"
	"time"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type contactRepo struct{ s *Store }

var _ repository.ContactRepository = contactRepo{}

func cloneContact(c model.ContactSubmission) *model.ContactSubmission {
	c.Phone = copyStr(c.Phone)
	return &c
}

func (r contactRepo) Create(_ context.Context, c *model.ContactSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.allocID("contacts")
	c.SubmittedAt = r.s.clock.Now()
	c.IsRead = false
	r.s.contacts = append(r.s.contacts, *cloneContact(*c))
	return nil
}

func (r contactRepo) List(_ context.Context) ([]*model.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.ContactSubmission, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		out = append(out, cloneContact(c))
	}
	newestFirst(out,
		func(c *model.ContactSubmission) time.Time { return c.SubmittedAt },
		func(c *model.ContactSubmission) int64 { return c.ID })
	return out, nil
}

func (r contactRepo) GetByID(_ context.Context, id int64) (*model.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.contacts {
		if c.ID == id {
			return cloneContact(c), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r contactRepo) MarkRead(_ context.Context, id int64, isRead bool) (*model.ContactSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.contacts {
		if r.s.contacts[i].ID == id {
			r.s.contacts[i].IsRead = isRead
			return cloneContact(r.s.contacts[i]), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r contactRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.contacts), nil
}

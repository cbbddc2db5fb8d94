package memstore

import (
	"context"
	"time"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type inquiryRepo struct{ s *Store }

var _ repository.InquiryRepository = inquiryRepo{}

func cloneInquiry(i model.ProjectInquiry) *model.ProjectInquiry {
	i.Company = copyStr(i.Company)
	i.Phone = copyStr(i.Phone)
	i.BudgetRange = copyStr(i.BudgetRange)
	i.Timeline = copyStr(i.Timeline)
	return &i
}

func (r inquiryRepo) Create(_ context.Context, i *model.ProjectInquiry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i.ID = r.s.allocID("inquiries")
	i.SubmittedAt = r.s.clock.Now()
	i.Status = model.InquiryStatusNew
	r.s.inquiries = append(r.s.inquiries, *cloneInquiry(*i))
	return nil
}

func (r inquiryRepo) List(_ context.Context) ([]*model.ProjectInquiry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.ProjectInquiry, 0, len(r.s.inquiries))
	for _, i := range r.s.inquiries {
		out = append(out, cloneInquiry(i))
	}
	newestFirst(out,
		func(i *model.ProjectInquiry) time.Time { return i.SubmittedAt },
		func(i *model.ProjectInquiry) int64 { return i.ID })
	return out, nil
}

func (r inquiryRepo) GetByID(_ context.Context, id int64) (*model.ProjectInquiry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, i := range r.s.inquiries {
		if i.ID == id {
			return cloneInquiry(i), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r inquiryRepo) UpdateStatus(_ context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for idx := range r.s.inquiries {
		if r.s.inquiries[idx].ID == id {
			r.s.inquiries[idx].Status = status
			return cloneInquiry(r.s.inquiries[idx]), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r inquiryRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.inquiries), nil
}

package service

import (
	"context"

	"github.com/devsolutions/backend/internal/model"
)

// ---------------------------------------------------------------------------
// func-field repository stubs shared by the service tests
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc   func(ctx context.Context, c *model.ContactSubmission) error
	listFunc     func(ctx context.Context) ([]*model.ContactSubmission, error)
	getFunc      func(ctx context.Context, id int64) (*model.ContactSubmission, error)
	markReadFunc func(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error)
	countFunc    func(ctx context.Context) (int, error)
}

func (m *mockContactRepository) Create(ctx context.Context, c *model.ContactSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id, isRead)
	}
	return nil, nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type mockNewsletterRepository struct {
	createFunc      func(ctx context.Context, s *model.NewsletterSubscription) error
	listFunc        func(ctx context.Context) ([]*model.NewsletterSubscription, error)
	getByEmailFunc  func(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	setActiveFunc   func(ctx context.Context, id int64, active bool) error
	countFunc       func(ctx context.Context) (int, error)
	countActiveFunc func(ctx context.Context) (int, error)
}

func (m *mockNewsletterRepository) Create(ctx context.Context, s *model.NewsletterSubscription) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockNewsletterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *mockNewsletterRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockNewsletterRepository) CountActive(ctx context.Context) (int, error) {
	if m.countActiveFunc != nil {
		return m.countActiveFunc(ctx)
	}
	return 0, nil
}

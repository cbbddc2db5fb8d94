package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (model.SubscribeResult, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		sub := &model.NewsletterSubscription{Email: email}
		err := s.repo.Create(ctx, sub)
		if errors.Is(err, repository.ErrDuplicate) {
			// 同時に登録されたケース: 既存の購読として扱う
			return model.AlreadySubscribed, nil
		}
		if err != nil {
			return 0, fmt.Errorf("create subscription: %w", err)
		}
		return model.Subscribed, nil
	case err != nil:
		return 0, fmt.Errorf("lookup subscription: %w", err)
	}

	if existing.IsActive {
		return model.AlreadySubscribed, nil
	}
	if err := s.repo.SetActive(ctx, existing.ID, true); err != nil {
		return 0, fmt.Errorf("reactivate subscription: %w", err)
	}
	return model.Reactivated, nil
}

func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.repo.SetActive(ctx, existing.ID, false)
}

func (s *newsletterServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	return s.repo.List(ctx)
}

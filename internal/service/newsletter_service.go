package service

import (
	"context"

	"github.com/devsolutions/backend/internal/model"
)

// NewsletterService はニュースレター購読のビジネスロジック
type NewsletterService interface {
	// Subscribe creates a subscription for email, reactivates an inactive one,
	// or does nothing when it is already active. The result says which.
	Subscribe(ctx context.Context, email string) (model.SubscribeResult, error)

	// Unsubscribe deactivates the subscription for email. Returns
	// repository.ErrNotFound when the address was never subscribed.
	Unsubscribe(ctx context.Context, email string) error

	// List returns every subscription, active or not, newest first.
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

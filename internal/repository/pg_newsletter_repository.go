package repository

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// NewsletterRepository はニュースレター購読の永続化インターフェース
type NewsletterRepository interface {
	// Create returns ErrDuplicate when the email is already stored.
	Create(ctx context.Context, s *model.NewsletterSubscription) error
	List(ctx context.Context) ([]*model.NewsletterSubscription, error)
	GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
type PgNewsletterRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewPgNewsletterRepository(db *sqlx.DB, clk clock.Clock) *PgNewsletterRepository {
	return &PgNewsletterRepository{db: db, clock: clk}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

const newsletterColumns = `id, email, subscribed_at, is_active`

func (r *PgNewsletterRepository) Create(ctx context.Context, s *model.NewsletterSubscription) error {
	s.SubscribedAt = r.clock.Now()
	s.IsActive = true
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO newsletter_subscriptions (email, subscribed_at, is_active)
		 VALUES ($1, $2, TRUE)
		 RETURNING id`,
		s.Email, s.SubscribedAt,
	).Scan(&s.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert newsletter subscription: %w", err)
	}
	return nil
}

func (r *PgNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	items := []*model.NewsletterSubscription{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+newsletterColumns+` FROM newsletter_subscriptions ORDER BY subscribed_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list newsletter subscriptions: %w", err)
	}
	return items, nil
}

// GetByEmail matches the address exactly.
func (r *PgNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var s model.NewsletterSubscription
	err := r.db.GetContext(ctx, &s,
		`SELECT `+newsletterColumns+` FROM newsletter_subscriptions WHERE email = $1`, email)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// SetActive only touches is_active; subscribed_at keeps the original sign-up time.
func (r *PgNewsletterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscriptions SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("update newsletter subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update newsletter subscription: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgNewsletterRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM newsletter_subscriptions`)
}

func (r *PgNewsletterRepository) CountActive(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM newsletter_subscriptions WHERE is_active = TRUE`)
}

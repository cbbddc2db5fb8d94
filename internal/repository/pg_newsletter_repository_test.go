package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgNewsletterRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectQuery(`INSERT INTO newsletter_subscriptions`).
		WithArgs("a@x.com", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	s := &model.NewsletterSubscription{Email: "a@x.com"}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, int64(1), s.ID)
	assert.True(t, s.IsActive)
	assert.Equal(t, testNow, s.SubscribedAt)
}

func TestPgNewsletterRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectQuery(`INSERT INTO newsletter_subscriptions`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.Create(context.Background(), &model.NewsletterSubscription{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPgNewsletterRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectQuery(`FROM newsletter_subscriptions WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "subscribed_at", "is_active"}).
			AddRow(int64(5), "a@x.com", testNow, false))

	s, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.ID)
	assert.False(t, s.IsActive)
}

func TestPgNewsletterRepository_SetActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectExec(`UPDATE newsletter_subscriptions SET is_active = \$2 WHERE id = \$1`).
		WithArgs(int64(5), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), 5, false))
}

func TestPgNewsletterRepository_SetActive_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectExec(`UPDATE newsletter_subscriptions`).
		WithArgs(int64(5), true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetActive(context.Background(), 5, true), ErrNotFound)
}

func TestPgNewsletterRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgNewsletterRepository(db, testClock())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM newsletter_subscriptions$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM newsletter_subscriptions WHERE is_active = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	active, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, active)
}

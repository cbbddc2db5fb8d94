package repository

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// ContactRepository defines the persistence interface for contact form submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Create(ctx context.Context, c *model.ContactSubmission) error
	List(ctx context.Context) ([]*model.ContactSubmission, error)
	GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error)
	MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(db *sqlx.DB, clk clock.Clock) *PgContactRepository {
	return &PgContactRepository{db: db, clock: clk}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, phone, message, submitted_at, is_read`

// Create inserts a new row. submitted_at comes from the clock and is_read
// always starts false; c.ID is filled from RETURNING.
func (r *PgContactRepository) Create(ctx context.Context, c *model.ContactSubmission) error {
	c.SubmittedAt = r.clock.Now()
	c.IsRead = false
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO contact_submissions (name, email, phone, message, submitted_at, is_read)
		 VALUES ($1, $2, $3, $4, $5, FALSE)
		 RETURNING id`,
		c.Name, c.Email, c.Phone, c.Message, c.SubmittedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// List returns every submission, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	items := []*model.ContactSubmission{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+contactColumns+` FROM contact_submissions ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return items, nil
}

// GetByID returns ErrNotFound when no row has the id.
func (r *PgContactRepository) GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	err := r.db.GetContext(ctx, &c,
		`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// MarkRead sets is_read and returns the updated row.
func (r *PgContactRepository) MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	err := r.db.GetContext(ctx, &c,
		`UPDATE contact_submissions SET is_read = $2 WHERE id = $1 RETURNING `+contactColumns,
		id, isRead)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM contact_submissions`)
}

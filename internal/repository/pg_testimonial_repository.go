package repository

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// TestimonialRepository はお客様の声の永続化インターフェース
type TestimonialRepository interface {
	Create(ctx context.Context, t *model.Testimonial) error
	List(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*model.Testimonial, error)
	Count(ctx context.Context) (int, error)
	CountFeatured(ctx context.Context) (int, error)
}

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewPgTestimonialRepository(db *sqlx.DB, clk clock.Clock) *PgTestimonialRepository {
	return &PgTestimonialRepository{db: db, clock: clk}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

const testimonialColumns = `id, client_name, client_position, company, testimonial, rating,
	image_url, featured, created_at`

// Create stores DefaultRating when t.Rating is zero.
func (r *PgTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	t.CreatedAt = r.clock.Now()
	if t.Rating == 0 {
		t.Rating = model.DefaultRating
	}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO testimonials
		   (client_name, client_position, company, testimonial, rating, image_url, featured, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		t.ClientName, t.ClientPosition, t.Company, t.Testimonial, int(t.Rating), t.ImageURL,
		t.Featured, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r *PgTestimonialRepository) List(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if filter.FeaturedOnly {
		query += ` WHERE featured = TRUE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	items := []*model.Testimonial{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

func (r *PgTestimonialRepository) GetByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	var t model.Testimonial
	err := r.db.GetContext(ctx, &t,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *PgTestimonialRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM testimonials`)
}

func (r *PgTestimonialRepository) CountFeatured(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM testimonials WHERE featured = TRUE`)
}

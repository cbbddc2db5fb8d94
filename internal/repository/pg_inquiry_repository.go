package repository

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// InquiryRepository はプロジェクト問い合わせの永続化インターフェース
type InquiryRepository interface {
	Create(ctx context.Context, i *model.ProjectInquiry) error
	List(ctx context.Context) ([]*model.ProjectInquiry, error)
	GetByID(ctx context.Context, id int64) (*model.ProjectInquiry, error)
	UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error)
	Count(ctx context.Context) (int, error)
}

// PgInquiryRepository is the PostgreSQL implementation of InquiryRepository.
type PgInquiryRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewPgInquiryRepository(db *sqlx.DB, clk clock.Clock) *PgInquiryRepository {
	return &PgInquiryRepository{db: db, clock: clk}
}

var _ InquiryRepository = (*PgInquiryRepository)(nil)

const inquiryColumns = `id, name, email, company, phone, project_type, budget_range,
	description, timeline, submitted_at, status`

// Create always stores status "new" regardless of i.Status.
func (r *PgInquiryRepository) Create(ctx context.Context, i *model.ProjectInquiry) error {
	i.SubmittedAt = r.clock.Now()
	i.Status = model.InquiryStatusNew
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO project_inquiries
		   (name, email, company, phone, project_type, budget_range, description, timeline, submitted_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		i.Name, i.Email, i.Company, i.Phone, string(i.ProjectType), i.BudgetRange,
		i.Description, i.Timeline, i.SubmittedAt, string(i.Status),
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert project inquiry: %w", err)
	}
	return nil
}

func (r *PgInquiryRepository) List(ctx context.Context) ([]*model.ProjectInquiry, error) {
	items := []*model.ProjectInquiry{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+inquiryColumns+` FROM project_inquiries ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list project inquiries: %w", err)
	}
	return items, nil
}

func (r *PgInquiryRepository) GetByID(ctx context.Context, id int64) (*model.ProjectInquiry, error) {
	var i model.ProjectInquiry
	err := r.db.GetContext(ctx, &i,
		`SELECT `+inquiryColumns+` FROM project_inquiries WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}

// UpdateStatus sets status and returns the updated row.
func (r *PgInquiryRepository) UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error) {
	var i model.ProjectInquiry
	err := r.db.GetContext(ctx, &i,
		`UPDATE project_inquiries SET status = $2 WHERE id = $1 RETURNING `+inquiryColumns,
		id, string(status))
	if err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}

func (r *PgInquiryRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM project_inquiries`)
}

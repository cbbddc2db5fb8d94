package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// PortfolioRepository はポートフォリオ案件の永続化インターフェース
type PortfolioRepository interface {
	Create(ctx context.Context, p *model.PortfolioProject) error
	List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error)
	GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error)
	Count(ctx context.Context) (int, error)
	CountFeatured(ctx context.Context) (int, error)
}

// PgPortfolioRepository is the PostgreSQL implementation of PortfolioRepository.
type PgPortfolioRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

func NewPgPortfolioRepository(db *sqlx.DB, clk clock.Clock) *PgPortfolioRepository {
	return &PgPortfolioRepository{db: db, clock: clk}
}

var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

const portfolioColumns = `id, title, description, image_url, technologies, project_url,
	github_url, category, featured, created_at`

func (r *PgPortfolioRepository) Create(ctx context.Context, p *model.PortfolioProject) error {
	p.CreatedAt = r.clock.Now()
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO portfolio_projects
		   (title, description, image_url, technologies, project_url, github_url, category, featured, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		p.Title, p.Description, p.ImageURL, p.Technologies, p.ProjectURL, p.GithubURL,
		string(p.Category), p.Featured, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert portfolio project: %w", err)
	}
	p.FillDerived()
	return nil
}

// List returns projects newest first. Filter fields combine with AND.
func (r *PgPortfolioRepository) List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error) {
	var conditions []string
	var args []any

	if filter.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	items := []*model.PortfolioProject{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+portfolioColumns+` FROM portfolio_projects`+where+` ORDER BY created_at DESC, id DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("list portfolio projects: %w", err)
	}
	for _, p := range items {
		p.FillDerived()
	}
	return items, nil
}

func (r *PgPortfolioRepository) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	var p model.PortfolioProject
	err := r.db.GetContext(ctx, &p,
		`SELECT `+portfolioColumns+` FROM portfolio_projects WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err)
	}
	p.FillDerived()
	return &p, nil
}

func (r *PgPortfolioRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM portfolio_projects`)
}

func (r *PgPortfolioRepository) CountFeatured(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM portfolio_projects WHERE featured = TRUE`)
}

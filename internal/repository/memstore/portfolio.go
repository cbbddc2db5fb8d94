package memstore

import (
	"context"
	"time"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

type portfolioRepo struct{ s *Store }

var _ repository.PortfolioRepository = portfolioRepo{}

func clonePortfolio(p model.PortfolioProject) *model.PortfolioProject {
	p.ImageURL = copyStr(p.ImageURL)
	p.ProjectURL = copyStr(p.ProjectURL)
	p.GithubURL = copyStr(p.GithubURL)
	p.FillDerived()
	return &p
}

func (r portfolioRepo) Create(_ context.Context, p *model.PortfolioProject) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.allocID("portfolio")
	p.CreatedAt = r.s.clock.Now()
	p.FillDerived()
	r.s.portfolio = append(r.s.portfolio, *clonePortfolio(*p))
	return nil
}

func (r portfolioRepo) List(_ context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*model.PortfolioProject{}
	for _, p := range r.s.portfolio {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, clonePortfolio(p))
	}
	newestFirst(out,
		func(p *model.PortfolioProject) time.Time { return p.CreatedAt },
		func(p *model.PortfolioProject) int64 { return p.ID })
	return out, nil
}

func (r portfolioRepo) GetByID(_ context.Context, id int64) (*model.PortfolioProject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.portfolio {
		if p.ID == id {
			return clonePortfolio(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r portfolioRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.portfolio), nil
}

func (r portfolioRepo) CountFeatured(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.portfolio {
		if p.Featured {
			n++
		}
	}
	return n, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// PortfolioService はポートフォリオ案件の参照・登録を扱う
type PortfolioService interface {
	List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error)
	// GetByID returns repository.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error)
	Create(ctx context.Context, p *model.PortfolioProject) error
}

type portfolioService struct {
	repo repository.PortfolioRepository
}

// NewPortfolioService creates a PortfolioService.
func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error) {
	return s.repo.List(ctx, filter)
}

func (s *portfolioService) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *portfolioService) Create(ctx context.Context, p *model.PortfolioProject) error {
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create portfolio project: %w", err)
	}
	p.FillDerived()
	return nil
}

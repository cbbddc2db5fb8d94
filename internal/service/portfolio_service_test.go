package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
	"github.com/devsolutions/backend/internal/repository/memstore"
)

func TestPortfolioService_CreateAndGet(t *testing.T) {
	svc := NewPortfolioService(memstore.New(clock.System{}).Portfolio())
	ctx := context.Background()

	p := &model.PortfolioProject{Title: "Shop", Technologies: "Go, React", Category: model.PortfolioCategoryWeb}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(p.TechnologiesList) != 2 {
		t.Errorf("TechnologiesList = %v", p.TechnologiesList)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Shop" {
		t.Errorf("Title = %q", got.Title)
	}

	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTestimonialService_Create(t *testing.T) {
	svc := NewTestimonialService(memstore.New(clock.System{}).Testimonials())
	ctx := context.Background()

	tm := &model.Testimonial{ClientName: "Carol", Testimonial: "Great"}
	if err := svc.Create(ctx, tm); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tm.Rating != model.DefaultRating {
		t.Errorf("Rating = %d, want default", tm.Rating)
	}

	if err := svc.Create(ctx, &model.Testimonial{ClientName: "x", Testimonial: "y", Rating: 9}); err == nil {
		t.Error("expected error for rating 9")
	}
}

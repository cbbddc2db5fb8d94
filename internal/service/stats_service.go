package service

import (
	"context"
	"fmt"

	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// StatsService builds the public site statistics and the operator dashboard.
// Each figure is an independent query; the results are not a snapshot.
type StatsService interface {
	SiteStats(ctx context.Context) (*model.SiteStats, error)
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

// StatsRepositories groups the stores the aggregation reads from.
type StatsRepositories struct {
	Contacts     repository.ContactRepository
	Newsletter   repository.NewsletterRepository
	Inquiries    repository.InquiryRepository
	Portfolio    repository.PortfolioRepository
	Testimonials repository.TestimonialRepository
}

type statsService struct {
	repos StatsRepositories
}

// NewStatsService creates a StatsService.
func NewStatsService(repos StatsRepositories) StatsService {
	return &statsService{repos: repos}
}

func (s *statsService) SiteStats(ctx context.Context) (*model.SiteStats, error) {
	var st model.SiteStats
	var err error

	if st.TotalProjects, err = s.repos.Portfolio.Count(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if st.FeaturedProjects, err = s.repos.Portfolio.CountFeatured(ctx); err != nil {
		return nil, fmt.Errorf("count featured projects: %w", err)
	}
	if st.TotalTestimonials, err = s.repos.Testimonials.Count(ctx); err != nil {
		return nil, fmt.Errorf("count testimonials: %w", err)
	}
	if st.FeaturedTestimonials, err = s.repos.Testimonials.CountFeatured(ctx); err != nil {
		return nil, fmt.Errorf("count featured testimonials: %w", err)
	}
	// 公開統計の購読者数はアクティブな購読のみ
	if st.TotalSubscriptions, err = s.repos.Newsletter.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count active subscriptions: %w", err)
	}
	return &st, nil
}

func (s *statsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var d model.Dashboard
	var err error

	if d.ContactSubmissions, err = s.repos.Contacts.List(ctx); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if d.ProjectInquiries, err = s.repos.Inquiries.List(ctx); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	if d.NewsletterSubscriptions, err = s.repos.Newsletter.List(ctx); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	if d.Stats.TotalContacts, err = s.repos.Contacts.Count(ctx); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	if d.Stats.TotalInquiries, err = s.repos.Inquiries.Count(ctx); err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}
	if d.Stats.TotalSubscriptions, err = s.repos.Newsletter.Count(ctx); err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}
	if d.Stats.ActiveSubscriptions, err = s.repos.Newsletter.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count active subscriptions: %w", err)
	}

	if d.ContactSubmissions == nil {
		d.ContactSubmissions = []*model.ContactSubmission{}
	}
	if d.ProjectInquiries == nil {
		d.ProjectInquiries = []*model.ProjectInquiry{}
	}
	if d.NewsletterSubscriptions == nil {
		d.NewsletterSubscriptions = []*model.NewsletterSubscription{}
	}
	return &d, nil
}

// Package memstore is an in-memory implementation of the repository
// interfaces. It backs service and router-level tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devsolutions/backend/internal/clock"
	"github.com/devsolutions/backend/internal/model"
	"github.com/devsolutions/backend/internal/repository"
)

// Store holds every table behind one mutex. IDs are assigned per table
// starting at 1.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	contacts     []model.ContactSubmission
	newsletter   []model.NewsletterSubscription
	inquiries    []model.ProjectInquiry
	portfolio    []model.PortfolioProject
	testimonials []model.Testimonial

	nextID map[string]int64
}

// New returns an empty store stamping records with clk.
func New(clk clock.Clock) *Store {
	return &Store{clock: clk, nextID: map[string]int64{}}
}

// PingContext always succeeds; it lets a Store stand in for repository.DB.
func (s *Store) PingContext(context.Context) error { return nil }

var _ repository.DB = (*Store)(nil)

func (s *Store) allocID(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// Contacts returns the store's ContactRepository.
func (s *Store) Contacts() repository.ContactRepository { return contactRepo{s} }

// Newsletter returns the store's NewsletterRepository.
func (s *Store) Newsletter() repository.NewsletterRepository { return newsletterRepo{s} }

// Inquiries returns the store's InquiryRepository.
func (s *Store) Inquiries() repository.InquiryRepository { return inquiryRepo{s} }

// Portfolio returns the store's PortfolioRepository.
func (s *Store) Portfolio() repository.PortfolioRepository { return portfolioRepo{s} }

// Testimonials returns the store's TestimonialRepository.
func (s *Store) Testimonials() repository.TestimonialRepository { return testimonialRepo{s} }

// newestFirst orders items by timestamp descending, then id descending.
func newestFirst[T any](items []T, at func(T) time.Time, id func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := at(items[i]), at(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return id(items[i]) > id(items[j])
	})
}

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/devsolutions/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Service mocks
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc   func(ctx context.Context, c *model.ContactSubmission) error
	listFunc     func(ctx context.Context) ([]*model.ContactSubmission, error)
	markReadFunc func(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, c *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, c)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) MarkRead(ctx context.Context, id int64, isRead bool) (*model.ContactSubmission, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id, isRead)
	}
	return &model.ContactSubmission{ID: id, IsRead: isRead}, nil
}

type mockNewsletterService struct {
	subscribeFunc   func(ctx context.Context, email string) (model.SubscribeResult, error)
	unsubscribeFunc func(ctx context.Context, email string) error
	listFunc        func(ctx context.Context) ([]*model.NewsletterSubscription, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (model.SubscribeResult, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email)
	}
	return model.Subscribed, nil
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, email)
	}
	return nil
}

func (m *mockNewsletterService) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockInquiryService struct {
	submitFunc       func(ctx context.Context, i *model.ProjectInquiry) error
	listFunc         func(ctx context.Context) ([]*model.ProjectInquiry, error)
	updateStatusFunc func(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error)
}

func (m *mockInquiryService) Submit(ctx context.Context, i *model.ProjectInquiry) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, i)
	}
	return nil
}

func (m *mockInquiryService) List(ctx context.Context) ([]*model.ProjectInquiry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockInquiryService) UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.ProjectInquiry, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.ProjectInquiry{ID: id, Status: status}, nil
}

type mockPortfolioService struct {
	listFunc    func(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.PortfolioProject, error)
	createFunc  func(ctx context.Context, p *model.PortfolioProject) error
}

func (m *mockPortfolioService) List(ctx context.Context, filter model.PortfolioFilter) ([]*model.PortfolioProject, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockPortfolioService) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioService) Create(ctx context.Context, p *model.PortfolioProject) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

type mockTestimonialService struct {
	listFunc   func(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error)
	createFunc func(ctx context.Context, t *model.Testimonial) error
}

func (m *mockTestimonialService) List(ctx context.Context, filter model.TestimonialFilter) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTestimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

type mockStatsService struct {
	siteStatsFunc func(ctx context.Context) (*model.SiteStats, error)
	dashboardFunc func(ctx context.Context) (*model.Dashboard, error)
}

func (m *mockStatsService) SiteStats(ctx context.Context) (*model.SiteStats, error) {
	if m.siteStatsFunc != nil {
		return m.siteStatsFunc(ctx)
	}
	return &model.SiteStats{}, nil
}

func (m *mockStatsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx)
	}
	return &model.Dashboard{}, nil
}

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) PingContext(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func serve(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func serveWithID(h http.HandlerFunc, method, target, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return m
}

// fieldMessages returns the messages reported for field in a 400 body.
func fieldMessages(t *testing.T, rec *httptest.ResponseRecorder, field string) []string {
	t.Helper()
	var fe map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &fe); err != nil {
		t.Fatalf("decode field errors %q: %v", rec.Body.String(), err)
	}
	return fe[field]
}

func strPtr(s string) *string { return &s }

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

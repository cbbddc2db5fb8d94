package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devsolutions/backend/internal/metrics"
)

// RouterConfig holds the HTTP-facing settings NewRouter needs.
type RouterConfig struct {
	// APIPrefix is prepended to every API route, e.g. "/api". May be "".
	APIPrefix          string
	AllowedOrigins     []string
	AllowAllOrigins    bool
	RateLimitPerMinute int
}

// Handlers bundles the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Contact     *ContactHandler
	Newsletter  *NewsletterHandler
	Inquiry     *InquiryHandler
	Portfolio   *PortfolioHandler
	Testimonial *TestimonialHandler
	Stats       *StatsHandler
}

// NewRouter builds the full HTTP handler. Trailing slashes are optional on
// every route.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(CORS(cfg.AllowedOrigins, cfg.AllowAllOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	api := func(r chi.Router) {
		r.Get("/health", h.Health.Health)

		// 公開フォームの POST のみレート制限
		r.Group(func(r chi.Router) {
			r.Use(RateLimit(cfg.RateLimitPerMinute))
			r.Post("/contact/submit", h.Contact.Submit)
			r.Post("/newsletter/subscribe", h.Newsletter.Subscribe)
			r.Post("/newsletter/unsubscribe", h.Newsletter.Unsubscribe)
			r.Post("/project-inquiry/submit", h.Inquiry.Submit)
		})

		r.Get("/contact/list", h.Contact.List)
		r.Get("/newsletter/list", h.Newsletter.List)
		r.Get("/project-inquiry/list", h.Inquiry.List)
		r.Get("/portfolio", h.Portfolio.List)
		r.Get("/portfolio/{id}", h.Portfolio.Get)
		r.Get("/testimonials", h.Testimonial.List)
		r.Get("/stats", h.Stats.Stats)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", h.Stats.Dashboard)
			r.Patch("/contacts/{id}/read", h.Contact.MarkRead)
			r.Patch("/project-inquiries/{id}/status", h.Inquiry.UpdateStatus)
			r.Post("/portfolio", h.Portfolio.Create)
			r.Post("/testimonials", h.Testimonial.Create)
		})
	}

	if cfg.APIPrefix == "" {
		r.Group(api)
	} else {
		r.Route(cfg.APIPrefix, api)
	}
	return r
}

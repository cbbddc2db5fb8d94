package model

// SiteStats is the public summary returned by GET /stats/.
// TotalSubscriptions counts active subscriptions only.
type SiteStats struct {
	TotalProjects        int `json:"total_projects"`
	FeaturedProjects     int `json:"featured_projects"`
	TotalTestimonials    int `json:"total_testimonials"`
	FeaturedTestimonials int `json:"featured_testimonials"`
	TotalSubscriptions   int `json:"total_subscriptions"`
}

// DashboardStats are the counters shown on the operator dashboard.
type DashboardStats struct {
	TotalContacts       int `json:"total_contacts"`
	TotalInquiries      int `json:"total_inquiries"`
	TotalSubscriptions  int `json:"total_subscriptions"`
	ActiveSubscriptions int `json:"active_subscriptions"`
}

// Dashboard bundles every submission listing with DashboardStats.
// The parts are read independently and are not a consistent snapshot.
type Dashboard struct {
	ContactSubmissions      []*ContactSubmission      `json:"contact_submissions"`
	ProjectInquiries        []*ProjectInquiry         `json:"project_inquiries"`
	NewsletterSubscriptions []*NewsletterSubscription `json:"newsletter_subscriptions"`
	Stats                   DashboardStats            `json:"stats"`
}

package model

import (
	"strings"
	"time"
)

// PortfolioProject is a showcased piece of past work. Technologies is stored
// as comma-separated text.
type PortfolioProject struct {
	ID           int64             `json:"id" db:"id"`
	Title        string            `json:"title" db:"title"`
	Description  string            `json:"description" db:"description"`
	ImageURL     *string           `json:"image_url" db:"image_url"`
	Technologies string            `json:"technologies" db:"technologies"`
	ProjectURL   *string           `json:"project_url" db:"project_url"`
	GithubURL    *string           `json:"github_url" db:"github_url"`
	Category     PortfolioCategory `json:"category" db:"category"`
	Featured     bool              `json:"featured" db:"featured"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`

	// Derived from Technologies on read; never stored.
	TechnologiesList []string `json:"technologies_list" db:"-"`
}

// PortfolioFilter narrows a portfolio listing. Zero values mean "no filter";
// set fields combine with AND.
type PortfolioFilter struct {
	FeaturedOnly bool
	Category     PortfolioCategory
}

// ParseTechnologies splits a comma-separated technologies string into its
// trimmed, ordered parts. An empty string yields an empty, non-nil slice.
func ParseTechnologies(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// FillDerived populates fields computed from stored columns.
func (p *PortfolioProject) FillDerived() {
	p.TechnologiesList = ParseTechnologies(p.Technologies)
}

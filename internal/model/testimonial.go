package model

import "time"

// Testimonial is a client quote shown on the website.
type Testimonial struct {
	ID             int64     `json:"id" db:"id"`
	ClientName     string    `json:"client_name" db:"client_name"`
	ClientPosition *string   `json:"client_position" db:"client_position"`
	Company        *string   `json:"company" db:"company"`
	Testimonial    string    `json:"testimonial" db:"testimonial"`
	Rating         Rating    `json:"rating" db:"rating"`
	ImageURL       *string   `json:"image_url" db:"image_url"`
	Featured       bool      `json:"featured" db:"featured"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TestimonialFilter narrows a testimonial listing.
type TestimonialFilter struct {
	FeaturedOnly bool
}

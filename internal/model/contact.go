package model

import "time"

// ContactSubmission represents a message submitted via the contact form.
type ContactSubmission struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       *string   `json:"phone" db:"phone"`
	Message     string    `json:"message" db:"message"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	IsRead      bool      `json:"is_read" db:"is_read"`
}

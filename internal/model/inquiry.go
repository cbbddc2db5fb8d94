package model

import "time"

// ProjectInquiry is a quote request submitted from the website.
// Status starts at InquiryStatusNew and is only changed by the operator.
type ProjectInquiry struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Email       string        `json:"email" db:"email"`
	Company     *string       `json:"company" db:"company"`
	Phone       *string       `json:"phone" db:"phone"`
	ProjectType ProjectType   `json:"project_type" db:"project_type"`
	BudgetRange *string       `json:"budget_range" db:"budget_range"`
	Description string        `json:"description" db:"description"`
	Timeline    *string       `json:"timeline" db:"timeline"`
	SubmittedAt time.Time     `json:"submitted_at" db:"submitted_at"`
	Status      InquiryStatus `json:"status" db:"status"`
}

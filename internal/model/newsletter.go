package model

import "time"

// NewsletterSubscription is one email address on the newsletter list.
// Email is unique across all rows; unsubscribing only clears IsActive.
type NewsletterSubscription struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
}

// SubscribeResult tells the caller what Subscribe did with an address.
type SubscribeResult int

const (
	// Subscribed means a new row was created.
	Subscribed SubscribeResult = iota
	// Reactivated means an inactive row was switched back on.
	Reactivated
	// AlreadySubscribed means the address was active and nothing changed.
	AlreadySubscribed
)

func (r SubscribeResult) String() string {
	switch r {
	case Subscribed:
		return "subscribed"
	case Reactivated:
		return "reactivated"
	case AlreadySubscribed:
		return "already_subscribed"
	default:
		return "unknown"
	}
}

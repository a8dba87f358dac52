package models

import (
	"time"
)

// NewsletterSubscription defines the newsletter subscription model based on
// the 'newsletter_subscriptions' table. Email is unique.
type NewsletterSubscription struct {
	ID             int64      `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at" db:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"`
}

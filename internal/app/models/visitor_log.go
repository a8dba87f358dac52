package models

import (
	"time"
)

// VisitorLog is an append-only record of one inbound HTTP request. Rows are
// written by the logging middleware and never mutated through the API.
type VisitorLog struct {
	ID           int64     `json:"id" db:"id"`
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	UserAgent    string    `json:"user_agent" db:"user_agent"`
	Endpoint     string    `json:"endpoint" db:"endpoint"`
	Method       string    `json:"method" db:"method"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	ResponseTime float64   `json:"response_time" db:"response_time"` // seconds
	Referrer     *string   `json:"referrer,omitempty" db:"referrer"`
	UserID       *int64    `json:"user_id,omitempty" db:"user_id"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

package middleware

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
)

// insertTimeout bounds the best-effort visitor log write, which runs after
// the response and therefore cannot use the request context.
const insertTimeout = 5 * time.Second

type visitorLogInserter interface {
	Insert(ctx context.Context, v *models.VisitorLog) error
}

// ProcessCounters holds cumulative request and error totals for this process.
// They reset on restart.
type ProcessCounters struct {
	requests atomic.Int64
	errors   atomic.Int64
}

// Requests returns the number of requests seen so far
func (p *ProcessCounters) Requests() int64 { return p.requests.Load() }

// Errors returns the number of 4xx/5xx responses seen so far
func (p *ProcessCounters) Errors() int64 { return p.errors.Load() }

// VisitorLogger records every inbound request: an append-only visitor log row
// plus X-Process-Time, X-Request-Count and X-Error-Count response headers.
type VisitorLogger struct {
	repo         visitorLogInserter
	counters     *ProcessCounters
	skipPrefixes []string
	logger       zerolog.Logger
}

// NewVisitorLogger creates a new VisitorLogger. Paths starting with one of
// skipPrefixes get headers but no database row.
func NewVisitorLogger(repo visitorLogInserter, skipPrefixes []string, logger zerolog.Logger) *VisitorLogger {
	return &VisitorLogger{
		repo:         repo,
		counters:     &ProcessCounters{},
		skipPrefixes: skipPrefixes,
		logger:       logger,
	}
}

// Counters exposes the process totals, mainly for tests
func (m *VisitorLogger) Counters() *ProcessCounters { return m.counters }

// headerWriter stamps the analytics headers just before the status line goes
// out. Setting them after the body is written would be too late.
type headerWriter struct {
	gin.ResponseWriter
	start    time.Time
	counters *ProcessCounters
	stamped  bool
}

func (w *headerWriter) stamp(statusCode int) {
	if w.stamped {
		return
	}
	w.stamped = true

	if statusCode >= 400 {
		w.counters.errors.Add(1)
	}

	elapsed := time.Since(w.start).Seconds()
	header := w.Header()
	header.Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', -1, 64))
	header.Set("X-Request-Count", strconv.FormatInt(w.counters.Requests(), 10))
	header.Set("X-Error-Count", strconv.FormatInt(w.counters.Errors(), 10))
}

func (w *headerWriter) WriteHeader(statusCode int) {
	w.stamp(statusCode)
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *headerWriter) Write(b []byte) (int, error) {
	w.stamp(w.Status())
	return w.ResponseWriter.Write(b)
}

func (w *headerWriter) WriteString(s string) (int, error) {
	w.stamp(w.Status())
	return w.ResponseWriter.WriteString(s)
}

// Handler returns the gin middleware function
func (m *VisitorLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.counters.requests.Add(1)

		writer := &headerWriter{
			ResponseWriter: c.Writer,
			start:          start,
			counters:       m.counters,
		}
		c.Writer = writer

		c.Next()

		writer.stamp(writer.Status())

		if m.skipped(c.Request.URL.Path) {
			return
		}

		entry := &models.VisitorLog{
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			Endpoint:     c.Request.URL.Path,
			Method:       c.Request.Method,
			StatusCode:   writer.Status(),
			ResponseTime: time.Since(start).Seconds(),
			Timestamp:    start,
		}
		if referrer := c.Request.Referer(); referrer != "" {
			entry.Referrer = &referrer
		}
		if userID, ok := UserIDFromContext(c); ok {
			entry.UserID = &userID
		}

		// Persisting the log never affects the response that already went out.
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		defer cancel()
		if err := m.repo.Insert(ctx, entry); err != nil {
			m.logger.Warn().Err(err).Str("endpoint", entry.Endpoint).Msg("Failed to record visitor log")
		}
	}
}

func (m *VisitorLogger) skipped(path string) bool {
	for _, prefix := range m.skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/app/models"
)

type fakeLogInserter struct {
	entries []*models.VisitorLog
	err     error
}

func (f *fakeLogInserter) Insert(ctx context.Context, v *models.VisitorLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, v)
	return nil
}

func newLoggedRouter(inserter *fakeLogInserter, skipPrefixes []string) (*gin.Engine, *VisitorLogger) {
	gin.SetMode(gin.TestMode)
	vl := NewVisitorLogger(inserter, skipPrefixes, zerolog.Nop())

	router := gin.New()
	router.Use(vl.Handler())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "missing"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router, vl
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(w, req)
	return w
}

func TestVisitorLoggerSetsHeaders(t *testing.T) {
	router, _ := newLoggedRouter(&fakeLogInserter{}, nil)

	w := doRequest(router, "/ok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Request-Count"))
	assert.Equal(t, "0", w.Header().Get("X-Error-Count"))

	elapsed, err := strconv.ParseFloat(w.Header().Get("X-Process-Time"), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 0.0)
}

func TestVisitorLoggerCountsRequestsAndErrors(t *testing.T) {
	router, vl := newLoggedRouter(&fakeLogInserter{}, nil)

	doRequest(router, "/ok")
	doRequest(router, "/missing")
	w := doRequest(router, "/ok")

	assert.Equal(t, int64(3), vl.Counters().Requests())
	assert.Equal(t, int64(1), vl.Counters().Errors())
	assert.Equal(t, "3", w.Header().Get("X-Request-Count"))
	assert.Equal(t, "1", w.Header().Get("X-Error-Count"))
}

func TestVisitorLoggerRecordsEntry(t *testing.T) {
	inserter := &fakeLogInserter{}
	router, _ := newLoggedRouter(inserter, nil)

	doRequest(router, "/missing")

	require.Len(t, inserter.entries, 1)
	entry := inserter.entries[0]
	assert.Equal(t, "/missing", entry.Endpoint)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.Equal(t, http.StatusNotFound, entry.StatusCode)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.GreaterOrEqual(t, entry.ResponseTime, 0.0)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestVisitorLoggerSkipsPrefixedPaths(t *testing.T) {
	inserter := &fakeLogInserter{}
	router, vl := newLoggedRouter(inserter, []string{"/health"})

	w := doRequest(router, "/health")

	// Headers and counters still apply; only the database row is skipped.
	assert.Empty(t, inserter.entries)
	assert.Equal(t, int64(1), vl.Counters().Requests())
	assert.Equal(t, "1", w.Header().Get("X-Request-Count"))
}

func TestVisitorLoggerInsertFailureDoesNotAffectResponse(t *testing.T) {
	inserter := &fakeLogInserter{err: assert.AnError}
	router, _ := newLoggedRouter(inserter, nil)

	w := doRequest(router, "/ok")

	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/auth"
)

func newProtectedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	admin := router.Group("/admin", m.JWTAuth(), m.RoleRequired("admin"))
	admin.GET("/whoami", func(c *gin.Context) {
		id, _ := UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.UserRole) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:    9,
		Email: "admin@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestJWTAuthMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newProtectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newProtectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: -time.Minute})
	router := newProtectedRouter(jwtService)
	token := issueToken(t, jwtService, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestRoleRequiredRejectsNonAdmin(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newProtectedRouter(jwtService)
	token := issueToken(t, jwtService, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthAllowsAdmin(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour})
	router := newProtectedRouter(jwtService)
	token := issueToken(t, jwtService, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9")
}

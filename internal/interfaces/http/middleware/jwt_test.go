package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/infrastructure/auth"
	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret-key-at-least-32-chars"

func newTestVerifier() *auth.Verifier {
	return auth.NewVerifier(config.JWTConfig{Secret: testSecret, RoleClaim: "user_role"})
}

func signToken(t *testing.T, userID uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       userID.String(),
		"user_role": role,
		"exp":       time.Now().Add(ttl).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type stubRoles map[uuid.UUID]string

func (s stubRoles) RoleOf(_ context.Context, id uuid.UUID) (string, error) {
	role, ok := s[id]
	if !ok {
		return "", errors.New("no profile")
	}
	return role, nil
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()

	router := gin.New()
	router.Use(JWTAuthMiddleware(newTestVerifier()))
	router.GET("/test", func(c *gin.Context) {
		claims := GetJWTClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), GetJWTUserID(c))
		assert.Equal(t, "farmer", GetJWTRole(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID, "farmer", time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "invalid token"},
		{"wrong scheme", "Basic abc", "invalid token"},
		{"empty token", "Bearer ", "invalid token"},
		{"garbage token", "Bearer not.a.jwt", "invalid token"},
		{"expired token", "Bearer " + signToken(t, uuid.New(), "admin", -time.Hour), "token has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuthMiddleware(newTestVerifier()))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuthMiddleware(newTestVerifier()))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/health", "/swagger/index.html"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := uuid.New()
	demoted := uuid.New()
	farmer := uuid.New()
	roles := stubRoles{admin: "admin", demoted: "farmer", farmer: "farmer"}

	newRouter := func(lookup RoleLookup) *gin.Engine {
		router := gin.New()
		router.Use(JWTAuthMiddleware(newTestVerifier()))
		router.GET("/admin", RequireAdmin(lookup), func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	tests := []struct {
		name     string
		lookup   RoleLookup
		userID   uuid.UUID
		claim    string
		expected int
	}{
		{"admin by stored role", roles, admin, "admin", http.StatusOK},
		{"stale admin claim", roles, demoted, "admin", http.StatusForbidden},
		{"farmer", roles, farmer, "farmer", http.StatusForbidden},
		{"unknown profile", roles, uuid.New(), "admin", http.StatusForbidden},
		{"claim only", nil, uuid.New(), "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tt.userID, tt.claim, time.Hour))
			w := httptest.NewRecorder()
			newRouter(tt.lookup).ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireRole_WithoutClaims(t *testing.T) {
	router := gin.New()
	router.GET("/admin", RequireAdmin(nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

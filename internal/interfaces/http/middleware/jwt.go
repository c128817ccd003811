package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/auth"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTRoleKey    = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenVerifier validates an access token and returns its claims
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	Verifier TokenVerifier
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(verifier TokenVerifier) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		Verifier: verifier,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(verifier))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.Verifier.Verify(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID.String())
		c.Set(JWTRoleKey, claims.Role)

		// Also set in request context for logger
		ctx := c.Request.Context()
		ctx, _ = logger.WithUser(ctx, logger.FromContext(ctx), claims.UserID.String(), claims.Role)
		c.Request = c.Request.WithContext(ctx)

		if cfg.Logger != nil {
			cfg.Logger.Debug("JWT authentication successful",
				zap.String("user_id", claims.UserID.String()),
				zap.String("role", claims.Role),
			)
		}

		c.Next()
	}
}

// handleAuthError answers 401 with a failed result
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorMessage := "authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		errorMessage = "token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		errorMessage = "token is not yet valid"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims), errors.Is(err, auth.ErrMissingUserID):
		errorMessage = "invalid token"
	}

	abortWithResult(c, http.StatusUnauthorized, shared.NewDomainError("UNAUTHORIZED", errorMessage))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTRole retrieves the role claim from context
func GetJWTRole(c *gin.Context) string {
	return c.GetString(JWTRoleKey)
}

// RoleLookup resolves the current role of a user
type RoleLookup interface {
	RoleOf(ctx context.Context, userID uuid.UUID) (string, error)
}

// RequireRole lets the request through only when the caller has one of the
// given roles. When lookup is set the stored role wins over the token claim.
func RequireRole(lookup RoleLookup, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortWithResult(c, http.StatusUnauthorized, shared.NewDomainError("UNAUTHORIZED", "authentication required"))
			return
		}

		role := claims.Role
		if lookup != nil {
			stored, err := lookup.RoleOf(c.Request.Context(), claims.UserID)
			if err != nil {
				logger.FromContext(c.Request.Context()).Warn("role lookup failed",
					zap.String("user_id", claims.UserID.String()),
					zap.Error(err),
				)
				role = ""
			} else {
				role = stored
			}
		}

		if _, ok := allowed[role]; !ok {
			abortWithResult(c, http.StatusForbidden,
				shared.NewDomainError("FORBIDDEN", "you do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireRole for the admin role
func RequireAdmin(lookup RoleLookup) gin.HandlerFunc {
	return RequireRole(lookup, "admin")
}

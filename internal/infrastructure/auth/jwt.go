// Package auth verifies access tokens issued by the external auth provider.
// Tokens are never issued or refreshed here.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing sub in claims")
)

// Claims is what the server needs from a verified token
type Claims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Verifier checks HS256 tokens against the shared secret
type Verifier struct {
	secret    []byte
	roleClaim string
	parser    *jwt.Parser
}

// NewVerifier creates a Verifier. Issuer and audience are checked only when configured.
func NewVerifier(cfg config.JWTConfig) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	roleClaim := cfg.RoleClaim
	if roleClaim == "" {
		roleClaim = "user_role"
	}
	return &Verifier{
		secret:    []byte(cfg.Secret),
		roleClaim: roleClaim,
		parser:    jwt.NewParser(opts...),
	}
}

// Verify validates the signature and registered claims and extracts the user
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	mc := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, mc, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		default:
			return nil, ErrInvalidToken
		}
	}

	sub, err := mc.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrMissingUserID
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidClaims
	}

	claims := &Claims{UserID: userID, Role: v.role(mc)}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// role reads the role claim at the top level or under app_metadata
func (v *Verifier) role(mc jwt.MapClaims) string {
	if r, ok := mc[v.roleClaim].(string); ok {
		return r
	}
	if meta, ok := mc["app_metadata"].(map[string]interface{}); ok {
		if r, ok := meta[v.roleClaim].(string); ok {
			return r
		}
	}
	return ""
}

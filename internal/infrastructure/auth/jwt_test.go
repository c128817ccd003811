package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func sign(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newTestVerifier() *Verifier {
	return NewVerifier(config.JWTConfig{Secret: testSecret, Issuer: "auth.test", RoleClaim: "user_role"})
}

func TestVerify_Success(t *testing.T) {
	userID := uuid.New()
	token := sign(t, jwt.MapClaims{
		"sub":       userID.String(),
		"iss":       "auth.test",
		"email":     "owner@farm.test",
		"user_role": "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, []byte(testSecret))

	claims, err := newTestVerifier().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "owner@farm.test", claims.Email)
	assert.False(t, claims.ExpiresAt.IsZero())
}

func TestVerify_RoleFromAppMetadata(t *testing.T) {
	token := sign(t, jwt.MapClaims{
		"sub":          uuid.NewString(),
		"iss":          "auth.test",
		"exp":          time.Now().Add(time.Hour).Unix(),
		"app_metadata": map[string]interface{}{"user_role": "farmer"},
	}, jwt.SigningMethodHS256, []byte(testSecret))

	claims, err := newTestVerifier().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "farmer", claims.Role)
}

func TestVerify_Failures(t *testing.T) {
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": uuid.NewString(),
			"iss": "auth.test",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	tests := []struct {
		name    string
		token   func() string
		wantErr error
	}{
		{
			name: "expired",
			token: func() string {
				c := valid()
				c["exp"] = time.Now().Add(-time.Hour).Unix()
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "not yet valid",
			token: func() string {
				c := valid()
				c["nbf"] = time.Now().Add(time.Hour).Unix()
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "wrong secret",
			token: func() string {
				return sign(t, valid(), jwt.SigningMethodHS256, []byte("other-secret"))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong algorithm",
			token: func() string {
				return sign(t, valid(), jwt.SigningMethodHS512, []byte(testSecret))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func() string {
				c := valid()
				c["iss"] = "someone-else"
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing exp",
			token: func() string {
				c := valid()
				delete(c, "exp")
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing sub",
			token: func() string {
				c := valid()
				delete(c, "sub")
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrMissingUserID,
		},
		{
			name: "sub is not a uuid",
			token: func() string {
				c := valid()
				c["sub"] = "user-1"
				return sign(t, c, jwt.SigningMethodHS256, []byte(testSecret))
			},
			wantErr: ErrInvalidClaims,
		},
		{
			name:    "garbage",
			token:   func() string { return "not.a.token" },
			wantErr: ErrInvalidToken,
		},
	}

	v := newTestVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

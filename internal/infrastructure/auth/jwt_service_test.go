package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mynkprtp/movieApi/domain"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, "movieapi", 15*time.Minute)

	token, err := svc.GenerateAccessToken("john@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTServiceImpl_UniqueJTI(t *testing.T) {
	svc := NewJWTService(testSecret, "movieapi", 15*time.Minute)

	a, err := svc.GenerateAccessToken("john@example.com", domain.RoleUser)
	require.NoError(t, err)
	b, err := svc.GenerateAccessToken("john@example.com", domain.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two tokens for the same subject must differ")
}

func TestJWTServiceImpl_ExpiredToken(t *testing.T) {
	svc := NewJWTService(testSecret, "movieapi", -time.Minute)

	token, err := svc.GenerateAccessToken("john@example.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	// The parser rejects expired tokens before the claim check runs
	assert.True(t, errors.Is(err, domain.ErrTokenExpired) || errors.Is(err, domain.ErrTokenInvalid))
}

func TestJWTServiceImpl_RejectsTampering(t *testing.T) {
	svc := NewJWTService(testSecret, "movieapi", 15*time.Minute)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("another-secret", "movieapi", 15*time.Minute)
		token, err := other.GenerateAccessToken("john@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		// alg=none is never accepted
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub":  "john@example.com",
			"role": domain.RoleAdmin,
			"exp":  time.Now().Add(time.Hour).Unix(),
			"iat":  time.Now().Unix(),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

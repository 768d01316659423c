//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret-0123456789abcdef"

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService(secret, "authenticated")
	userID := uuid.New()

	t.Run("success: round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "diver@example.com", time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		got, err := claims.SubjectID()
		require.NoError(t, err)
		assert.Equal(t, userID, got)
		assert.Equal(t, "diver@example.com", claims.Email)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: wrong audience", func(t *testing.T) {
		other := jwt.NewService(secret, "service_role")
		token, err := other.GenerateToken(userID, "", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		other := jwt.NewService("another-secret-0123456789abcdef", "authenticated")
		token, err := other.GenerateToken(userID, "", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: non-uuid subject", func(t *testing.T) {
		claims := gojwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			Audience:  gojwt.ClaimStrings{"authenticated"},
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		parsed, err := svc.ValidateToken(token)
		require.NoError(t, err)
		_, err = parsed.SubjectID()
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

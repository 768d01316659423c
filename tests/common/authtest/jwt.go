//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/pkg/config"
	"github.com/Evidive-blue/evidive/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTTL = time.Hour

// JWTHelper mints tokens the way the identity provider would, signed with
// the shared test secret.
type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, h.cfg.Audience)
	token, err := service.GenerateToken(userID, email, defaultTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, h.cfg.Audience)
	token, err := service.GenerateToken(userID, email, -time.Minute)
	require.NoError(t, err)
	return token
}

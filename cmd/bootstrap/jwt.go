package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Evidive-blue/evidive/internal/pkg/config"
	"github.com/Evidive-blue/evidive/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService prefers the JWKS endpoint when configured and falls back to
// the shared HS256 secret.
func NewJWTService(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*jwt.Service, error) {
	if cfg.Auth.JWKSURL == "" {
		return jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.Audience), nil
	}

	svc, err := jwt.NewJWKSService(cfg.Auth.JWKSURL, cfg.Auth.Audience, cfg.Auth.JWKSRefresh, func(err error) {
		logger.Error("JWKS refresh failed", "error", err)
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			svc.Close()
			return nil
		},
	})
	return svc, nil
}

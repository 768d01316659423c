package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Evidive-blue/evidive/internal/domain/user"
	"github.com/Evidive-blue/evidive/internal/handler/httperr"
	"github.com/Evidive-blue/evidive/internal/pkg/cookie"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	access         queries.AccessQueries
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, access queries.AccessQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		access:         access,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		c.Set(ctxUserIDKey, identity.ID())
		c.Set(ctxUserEmailKey, identity.Email())
		c.Set("jwt_claims", map[string]any{
			"user_id": identity.ID().String(),
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth; the role comes from the profile row.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if err := m.access.RequireAdmin(c.Request.Context(), userID); err != nil {
			if errs.Is(err, user.ErrAdminRequired) {
				httperr.AbortWithError(c, http.StatusForbidden, err, "Admin access required", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmailKey)
}

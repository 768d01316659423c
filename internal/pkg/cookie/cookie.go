package cookie

import (
	"github.com/gin-gonic/gin"
)

// Supabase stores the session token under this name when the frontend uses cookie auth.
const AccessTokenCookieName = "sb-access-token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

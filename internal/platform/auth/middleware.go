package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSession: セッションクッキーを検証する。管理系ルートに噛ませる。
func RequireSession(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !svc.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
			return
		}
		c.Next()
	}
}

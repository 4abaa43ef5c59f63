package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const AdminUsernameKey = "admin_username"

// TokenParser проверяет JWT и возвращает имя администратора
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AdminOnly пропускает только запросы с валидным токеном администратора
func AdminOnly(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authorization header required",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid authorization header",
			})
			return
		}

		username, err := parser.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		c.Set(AdminUsernameKey, username)
		c.Next()
	}
}

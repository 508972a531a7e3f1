package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenHeader кладёт значение заголовка token в контекст запроса.
// Ничего не проверяет и никого не отбрасывает: верификация принадлежности
// токена идёт в сервисах, потому что ожидаемый владелец у каждого роута свой.
func TokenHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if t := strings.TrimSpace(c.GetHeader("token")); t != "" {
			c.Set("token_id", t)
		}
		c.Next()
	}
}

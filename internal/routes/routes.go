package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uptimeapi/internal/handlers"
	"uptimeapi/internal/middleware"
)

// SetupRoutes собирает явный реестр роутов. Хендлеры передаются снаружи,
// глобальных таблиц нет — в тестах можно поднять сколько угодно независимых
// роутеров.
func SetupRoutes(
	r *gin.Engine,
	systemHandler *handlers.SystemHandler,
	accountHandler *handlers.AccountHandler,
	tokenHandler *handlers.TokenHandler,
	checkHandler *handlers.CheckHandler,
) *gin.Engine {

	// известный путь + неподдерживаемый метод = 405, а не 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.Use(middleware.Metrics())
	r.Use(middleware.TokenHeader())

	// ---- public
	r.GET("/ping", systemHandler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/users", accountHandler.Register)
	r.POST("/tokens", tokenHandler.Login)

	// USERS (токен владельца в заголовке token)
	users := r.Group("/users")
	{
		users.GET("/:phone", accountHandler.Fetch)
		users.PUT("/:phone", accountHandler.Amend)
		users.DELETE("/:phone", accountHandler.Retire)
	}

	// TOKENS
	tokens := r.Group("/tokens")
	{
		tokens.GET("/:id", tokenHandler.Get)
		tokens.PUT("/:id", tokenHandler.Extend)
		tokens.DELETE("/:id", tokenHandler.Revoke)
	}

	// CHECKS
	checks := r.Group("/checks")
	{
		checks.POST("", checkHandler.Create)
		checks.GET("/:id", checkHandler.Get)
		checks.PUT("/:id", checkHandler.Amend)
		checks.DELETE("/:id", checkHandler.Remove)
	}

	return r
}

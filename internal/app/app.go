package app

import (
	"fmt"
	"log"
	"time"

	"uptimeapi/internal/config"
	"uptimeapi/internal/handlers"
	"uptimeapi/internal/routes"
	"uptimeapi/internal/services"
	"uptimeapi/internal/storage"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "uptimeapi/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === Store ===
	store, err := storage.NewFileStore(cfg.Data.Dir)
	if err != nil {
		log.Fatal("Ошибка инициализации хранилища: ", err)
	}
	locks := storage.NewLockTable()

	// === Services ===
	authService := services.NewAuthService(cfg.Auth.BcryptCost)
	tokenService := services.NewTokenService(
		store,
		locks,
		authService,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		cfg.Auth.TokenLength,
	)
	accountService := services.NewAccountService(store, locks, authService, tokenService)
	checkService := services.NewCheckService(store, locks, tokenService, cfg.Checks.MaxPerAccount)

	// === Handlers ===
	systemHandler := handlers.NewSystemHandler()
	accountHandler := handlers.NewAccountHandler(accountService)
	tokenHandler := handlers.NewTokenHandler(tokenService, store)
	checkHandler := handlers.NewCheckHandler(checkService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		systemHandler,
		accountHandler,
		tokenHandler,
		checkHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s, данные в %s", listenAddr, store.BaseDir())
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

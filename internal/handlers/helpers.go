package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"uptimeapi/internal/services"
)

// tokenFromCtx достаёт bearer-токен, положенный middleware из заголовка token.
func tokenFromCtx(c *gin.Context) string {
	v, ok := c.Get("token_id")
	if !ok {
		return ""
	}
	t, _ := v.(string)
	return t
}

// bindLenient декодирует тело в req; битый JSON эквивалентен пустому объекту
// (контракт транспорта: ошибка парсинга наружу не всплывает, валидация полей
// сама скажет, чего не хватает).
func bindLenient(c *gin.Context, req any) {
	_ = c.ShouldBindJSON(req)
}

// respondError мапит таксономию сервисного слоя в (статус, {"error": ...}).
// 400 — валидация/квота/истёкший токен, 403 — авторизация, 404 — нет ресурса,
// 500 — хранилище, целостность и частичная зачистка.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var cleanupErr *services.CleanupError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrQuotaExceeded),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "missing or invalid token"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &cleanupErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": cleanupErr.Error()})
	case errors.Is(err, services.ErrIntegrity):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		// Авария хранилища — единственная категория, которую дополнительно
		// логируем для оператора.
		log.Printf("[http] storage failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"uptimeapi/internal/models"
	"uptimeapi/internal/services"
	"uptimeapi/internal/storage"
)

type TokenHandler struct {
	tokens services.TokenService
	store  storage.Store
}

func NewTokenHandler(tokens services.TokenService, store storage.Store) *TokenHandler {
	return &TokenHandler{tokens: tokens, store: store}
}

// @Summary      Вход в систему
// @Description  Сверяет пароль и выдаёт bearer-токен на один час
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Телефон и пароль"
// @Success      201    {object}  models.Token
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /tokens [post]
func (h *TokenHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	bindLenient(c, &req)

	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)
	if len(phone) != 10 || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field(s)"})
		return
	}

	// Не раскрываем, что именно не совпало: неизвестный телефон и неверный
	// пароль снаружи одинаковы.
	var account models.StoredAccount
	if err := h.store.Read(storage.CollectionAccounts, phone, &account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid phone number or password"})
			return
		}
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(phone, password, account.HashedPassword)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid phone number or password"})
			return
		}
		respondError(c, err)
		return
	}
	log.Printf("[tokens][login] issued for phone=%s exp=%s", phone, token.Expires.Format("15:04:05"))
	c.JSON(http.StatusCreated, token)
}

// @Summary      Прочитать токен
// @Tags         Tokens
// @Produce      json
// @Param        id   path      string  true  "Id токена"
// @Success      200  {object}  models.Token
// @Failure      404  {object}  map[string]string
// @Router       /tokens/{id} [get]
func (h *TokenHandler) Get(c *gin.Context) {
	token, err := h.tokens.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// @Summary      Продлить токен
// @Description  Сдвигает срок действия живого токена на час вперёд; истёкший не продлевается
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Param        id      path      string                true  "Id токена"
// @Param        extend  body      models.ExtendRequest  true  "Флаг продления"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /tokens/{id} [put]
func (h *TokenHandler) Extend(c *gin.Context) {
	var req models.ExtendRequest
	bindLenient(c, &req)
	if !req.Extend {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields or fields are invalid"})
		return
	}

	if err := h.tokens.Extend(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// @Summary      Отозвать токен
// @Tags         Tokens
// @Produce      json
// @Param        id   path      string  true  "Id токена"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tokens/{id} [delete]
func (h *TokenHandler) Revoke(c *gin.Context) {
	if err := h.tokens.Revoke(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[tokens][revoke] deleted id=%s", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{})
}

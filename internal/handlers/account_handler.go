package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"uptimeapi/internal/models"
	"uptimeapi/internal/services"
)

type AccountHandler struct {
	service services.AccountService
}

func NewAccountHandler(service services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// @Summary      Регистрация аккаунта
// @Description  Создаёт аккаунт по номеру телефона; пароль хранится только в виде хеша
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        account  body      models.RegisterRequest  true  "Данные аккаунта"
// @Success      201      {object}  models.Account
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /users [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	bindLenient(c, &req)

	account, err := h.service.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[users][register] created phone=%s", account.Phone)
	c.JSON(http.StatusCreated, account)
}

// @Summary      Получить аккаунт
// @Description  Возвращает аккаунт владельца токена, без хеша пароля
// @Tags         Users
// @Produce      json
// @Param        phone  path      string  true  "Номер телефона"
// @Param        token  header    string  true  "Bearer-токен"
// @Success      200    {object}  models.Account
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /users/{phone} [get]
func (h *AccountHandler) Fetch(c *gin.Context) {
	account, err := h.service.Fetch(c.Param("phone"), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// @Summary      Обновить аккаунт
// @Description  Частичное обновление: имя, фамилия и/или пароль
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        phone  path      string               true  "Номер телефона"
// @Param        token  header    string               true  "Bearer-токен"
// @Param        patch  body      models.AccountPatch  true  "Изменяемые поля"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /users/{phone} [put]
func (h *AccountHandler) Amend(c *gin.Context) {
	phone := c.Param("phone")

	var patch models.AccountPatch
	bindLenient(c, &patch)

	if err := h.service.Amend(phone, &patch, tokenFromCtx(c)); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[users][amend] updated phone=%s", phone)
	c.JSON(http.StatusOK, gin.H{})
}

// @Summary      Удалить аккаунт
// @Description  Удаляет аккаунт и каскадно зачищает его проверки
// @Tags         Users
// @Produce      json
// @Param        phone  path      string  true  "Номер телефона"
// @Param        token  header    string  true  "Bearer-токен"
// @Success      200    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /users/{phone} [delete]
func (h *AccountHandler) Retire(c *gin.Context) {
	phone := c.Param("phone")

	if err := h.service.Retire(phone, tokenFromCtx(c)); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[users][retire] removed phone=%s", phone)
	c.JSON(http.StatusOK, gin.H{})
}

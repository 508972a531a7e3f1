package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"uptimeapi/internal/models"
	"uptimeapi/internal/services"
)

type CheckHandler struct {
	service services.CheckService
}

func NewCheckHandler(service services.CheckService) *CheckHandler {
	return &CheckHandler{service: service}
}

// @Summary      Создать проверку
// @Description  Создаёт наблюдаемый URL от имени владельца токена; не больше пяти проверок на аккаунт
// @Tags         Checks
// @Accept       json
// @Produce      json
// @Param        token  header    string                     true  "Bearer-токен"
// @Param        check  body      models.CreateCheckRequest  true  "Параметры проверки"
// @Success      201    {object}  models.Check
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /checks [post]
func (h *CheckHandler) Create(c *gin.Context) {
	var req models.CreateCheckRequest
	bindLenient(c, &req)

	check, err := h.service.Create(tokenFromCtx(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[checks][create] id=%s phone=%s url=%s://%s", check.ID, check.UserPhone, check.Protocol, check.URL)
	c.JSON(http.StatusCreated, check)
}

// @Summary      Получить проверку
// @Tags         Checks
// @Produce      json
// @Param        id     path      string  true  "Id проверки"
// @Param        token  header    string  true  "Bearer-токен"
// @Success      200    {object}  models.Check
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /checks/{id} [get]
func (h *CheckHandler) Get(c *gin.Context) {
	check, err := h.service.Get(c.Param("id"), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// @Summary      Обновить проверку
// @Description  Частичное обновление параметров; хотя бы одно поле обязательно
// @Tags         Checks
// @Accept       json
// @Produce      json
// @Param        id     path      string            true  "Id проверки"
// @Param        token  header    string            true  "Bearer-токен"
// @Param        patch  body      models.CheckPatch true  "Изменяемые поля"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /checks/{id} [put]
func (h *CheckHandler) Amend(c *gin.Context) {
	var patch models.CheckPatch
	bindLenient(c, &patch)

	if err := h.service.Amend(c.Param("id"), &patch, tokenFromCtx(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// @Summary      Удалить проверку
// @Description  Удаляет проверку и вычёркивает её из списка владельца
// @Tags         Checks
// @Produce      json
// @Param        id     path      string  true  "Id проверки"
// @Param        token  header    string  true  "Bearer-токен"
// @Success      200    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /checks/{id} [delete]
func (h *CheckHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Param("id"), tokenFromCtx(c)); err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[checks][remove] id=%s", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{})
}

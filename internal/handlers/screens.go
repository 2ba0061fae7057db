package handlers

import (
	"net/http"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/ws"

	"github.com/gin-gonic/gin"
)

type ScreenRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Orientation string `json:"orientation" binding:"required,oneof=horizontal vertical"`
	ActiveImage string `json:"active_image"`
}

// ScreenResponse — экран в ответах API.
type ScreenResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Orientation string `json:"orientation"`
	ActiveImage string `json:"active_image,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toScreenResponse(s models.Screen) ScreenResponse {
	return ScreenResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Orientation: s.Orientation,
		ActiveImage: s.ActiveImage,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// @Summary		Создание экрана
// @Description	Регистрирует новый экран вывески с уникальным слагом
// @Tags			screens
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			screen	body		ScreenRequest			true	"Данные экрана"
// @Success		201		{object}	ScreenResponse			"Созданный экран"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или слаг занят (SLUG_EXISTS)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/screens [post]
func CreateScreenHandler(c *gin.Context) {
	var req ScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var existing models.Screen
	if err := storage.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "SLUG_EXISTS",
			Message: "Экран с таким слагом уже существует",
		})
		return
	}

	screen := models.Screen{
		Name:        req.Name,
		Slug:        req.Slug,
		Orientation: req.Orientation,
		ActiveImage: req.ActiveImage,
	}

	if err := storage.DB.Create(&screen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании экрана",
		})
		return
	}

	c.JSON(http.StatusCreated, toScreenResponse(screen))
}

// @Summary		Список экранов
// @Tags			screens
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		ScreenResponse			"Список экранов"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/screens [get]
func GetScreensHandler(c *gin.Context) {
	var screens []models.Screen
	if err := storage.DB.Order("created_at DESC").Find(&screens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении экранов",
		})
		return
	}

	result := make([]ScreenResponse, 0, len(screens))
	for _, s := range screens {
		result = append(result, toScreenResponse(s))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary		Обновление экрана
// @Description	Обновляет экран; при смене слага проверяет уникальность
// @Tags			screens
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string					true	"ID экрана"
// @Param			screen	body		ScreenRequest			true	"Новые данные экрана"
// @Success		200		{object}	ScreenResponse			"Обновленный экран"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или слаг занят (SLUG_EXISTS)"
// @Failure		404		{object}	response.ErrorResponse	"Экран не найден (SCREEN_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/screens/{id} [put]
func UpdateScreenHandler(c *gin.Context) {
	var screen models.Screen
	if err := storage.DB.First(&screen, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран не найден",
		})
		return
	}

	var req ScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if req.Slug != screen.Slug {
		var existing models.Screen
		if err := storage.DB.Where("slug = ? AND id <> ?", req.Slug, screen.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "SLUG_EXISTS",
				Message: "Экран с таким слагом уже существует",
			})
			return
		}
	}

	oldSlug := screen.Slug

	screen.Name = req.Name
	screen.Slug = req.Slug
	screen.Orientation = req.Orientation
	screen.ActiveImage = req.ActiveImage

	if err := storage.DB.Save(&screen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении экрана",
		})
		return
	}

	// Плеер, висящий на старом слаге, должен узнать об изменениях.
	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{EventType: "screen_updated", Screen: oldSlug})
	if screen.Slug != oldSlug {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{EventType: "screen_updated", Screen: screen.Slug})
	}

	c.JSON(http.StatusOK, toScreenResponse(screen))
}

// @Summary		Удаление экрана
// @Tags			screens
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string						true	"ID экрана"
// @Success		200	{object}	response.SuccessResponse	"Экран удален"
// @Failure		404	{object}	response.ErrorResponse		"Экран не найден (SCREEN_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/api/screens/{id} [delete]
func DeleteScreenHandler(c *gin.Context) {
	var screen models.Screen
	if err := storage.DB.First(&screen, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран не найден",
		})
		return
	}

	if err := storage.DB.Delete(&screen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении экрана",
		})
		return
	}

	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{EventType: "screen_updated", Screen: screen.Slug})

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Экран успешно удален"})
}

// @Summary		Экран по слагу
// @Description	Публичный эндпоинт плеера: возвращает экран по слагу
// @Tags			tv
// @Produce		json
// @Param			slug	path		string					true	"Слаг экрана"
// @Success		200		{object}	ScreenResponse			"Экран"
// @Failure		404		{object}	response.ErrorResponse	"Экран не найден (SCREEN_NOT_FOUND)"
// @Router			/api/tv/{slug} [get]
func GetScreenBySlugHandler(c *gin.Context) {
	var screen models.Screen
	if err := storage.DB.Where("slug = ?", c.Param("slug")).First(&screen).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран с таким слагом не найден",
		})
		return
	}
	c.JSON(http.StatusOK, toScreenResponse(screen))
}

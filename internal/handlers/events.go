package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/storage"

	"github.com/gin-gonic/gin"
)

var eventsCtx = context.Background()

type EventRequest struct {
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location"`
	StartDateTime string   `json:"start_date_time" binding:"required"`
	EndDateTime   string   `json:"end_date_time" binding:"required"`
	ScreenIDs     []string `json:"screen_ids"`
	Tags          []string `json:"tags"`
}

// EventResponse — событие в ответах CRUD-эндпоинтов админки.
type EventResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	StartDateTime string   `json:"start_date_time"`
	EndDateTime   string   `json:"end_date_time"`
	ScreenIDs     []string `json:"screen_ids"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"created_at"`
}

func toEventResponse(e models.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Location:      e.Location,
		StartDateTime: e.StartTime.UTC().Format(time.RFC3339),
		EndDateTime:   e.EndTime.UTC().Format(time.RFC3339),
		ScreenIDs:     models.SplitList(e.ScreenIDs),
		Tags:          models.SplitList(e.Tags),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// parseEventTimes разбирает и проверяет окно события: времена в RFC 3339,
// окончание строго позже начала. Инвариант end > start живет здесь,
// на пути создания/редактирования, а не в проекционном движке.
func parseEventTimes(req EventRequest) (start, end time.Time, errCode, errMsg string) {
	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		return start, end, "VALIDATION_ERROR", "Неверный формат времени начала (ожидается RFC 3339)"
	}
	end, err = time.Parse(time.RFC3339, req.EndDateTime)
	if err != nil {
		return start, end, "VALIDATION_ERROR", "Неверный формат времени окончания (ожидается RFC 3339)"
	}
	if !end.After(start) {
		return start, end, "EVENT_TIME_INVALID", "Время окончания должно быть позже времени начала"
	}
	return start, end, "", ""
}

// @Summary		Создание события
// @Description	Создает событие и оповещает плееры назначенных экранов
// @Tags			events
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			event	body		EventRequest			true	"Данные события"
// @Success		201		{object}	EventResponse			"Созданное событие"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, EVENT_TIME_INVALID)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/events [post]
func CreateEventHandler(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	start, end, errCode, errMsg := parseEventTimes(req)
	if errCode != "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: errCode, Message: errMsg})
		return
	}

	event := models.Event{
		Name:      req.Name,
		Location:  req.Location,
		StartTime: start,
		EndTime:   end,
		ScreenIDs: models.JoinList(req.ScreenIDs),
		Tags:      models.JoinList(req.Tags),
	}

	if err := storage.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании события",
		})
		return
	}

	storage.InvalidateEventsSnapshot(eventsCtx)
	notifyScreens(req.ScreenIDs, "events_updated")

	c.JSON(http.StatusCreated, toEventResponse(event))
}

// @Summary		Список событий
// @Description	Возвращает все события, отсортированные по времени начала
// @Tags			events
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		EventResponse			"Список событий"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/events [get]
func GetEventsHandler(c *gin.Context) {
	var events []models.Event
	if err := storage.DB.Order("start_time ASC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении событий",
		})
		return
	}

	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, toEventResponse(e))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary		Получение события
// @Tags			events
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string					true	"ID события"
// @Success		200	{object}	EventResponse			"Событие"
// @Failure		404	{object}	response.ErrorResponse	"Событие не найдено (EVENT_NOT_FOUND)"
// @Router			/api/events/{id} [get]
func GetEventHandler(c *gin.Context) {
	var event models.Event
	if err := storage.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Событие не найдено",
		})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

// @Summary		Обновление события
// @Description	Полностью обновляет событие и оповещает старые и новые экраны
// @Tags			events
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string					true	"ID события"
// @Param			event	body		EventRequest			true	"Новые данные события"
// @Success		200		{object}	EventResponse			"Обновленное событие"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, EVENT_TIME_INVALID)"
// @Failure		404		{object}	response.ErrorResponse	"Событие не найдено (EVENT_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/events/{id} [put]
func UpdateEventHandler(c *gin.Context) {
	var event models.Event
	if err := storage.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Событие не найдено",
		})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	start, end, errCode, errMsg := parseEventTimes(req)
	if errCode != "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: errCode, Message: errMsg})
		return
	}

	// Оповещаем и старые, и новые экраны: у снятых событие должно пропасть.
	oldScreens := models.SplitList(event.ScreenIDs)

	event.Name = req.Name
	event.Location = req.Location
	event.StartTime = start
	event.EndTime = end
	event.ScreenIDs = models.JoinList(req.ScreenIDs)
	event.Tags = models.JoinList(req.Tags)

	if err := storage.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении события",
		})
		return
	}

	storage.InvalidateEventsSnapshot(eventsCtx)
	notifyScreens(unionIDs(oldScreens, req.ScreenIDs), "events_updated")

	c.JSON(http.StatusOK, toEventResponse(event))
}

// @Summary		Удаление события
// @Tags			events
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string						true	"ID события"
// @Success		200	{object}	response.SuccessResponse	"Событие удалено"
// @Failure		404	{object}	response.ErrorResponse		"Событие не найдено (EVENT_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/api/events/{id} [delete]
func DeleteEventHandler(c *gin.Context) {
	var event models.Event
	if err := storage.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "EVENT_NOT_FOUND",
			Message: "Событие не найдено",
		})
		return
	}

	if err := storage.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении события",
		})
		return
	}

	storage.InvalidateEventsSnapshot(eventsCtx)
	notifyScreens(models.SplitList(event.ScreenIDs), "events_updated")

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Событие успешно удалено"})
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var result []string
	for _, id := range append(append([]string{}, a...), b...) {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

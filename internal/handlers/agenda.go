package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/schedule"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/venue"

	"github.com/gin-gonic/gin"
)

// AgendaColumnResponse — колонка недельной афиши плеера. Лимита видимых
// событий нет: прокрутка длинных списков — забота плеера.
type AgendaColumnResponse struct {
	Date    string      `json:"date"`
	Weekday int         `json:"weekday"`
	IsToday bool        `json:"is_today"`
	Events  []EventView `json:"events"`
}

// AgendaResponse — недельная афиша одного экрана.
type AgendaResponse struct {
	Screen    ScreenResponse         `json:"screen"`
	WeekStart string                 `json:"week_start"`
	Columns   []AgendaColumnResponse `json:"columns"`
	Problems  []schedule.Diagnostic  `json:"problems,omitempty"`
}

// parseWeekdays разбирает список дней недели вида "1,2,3,4,5" (0 = воскресенье).
func parseWeekdays(s string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, strconv.ErrRange
		}
		weekdays = append(weekdays, time.Weekday(n))
	}
	return weekdays, nil
}

// @Summary		Недельная афиша экрана
// @Description	Публичный эндпоинт плеера: афиша текущей недели для одного экрана
// @Tags			tv
// @Produce		json
// @Param			slug				path		string	true	"Слаг экрана"
// @Param			week_start			query		string	false	"Начало недели: sunday или monday (по умолчанию sunday)"
// @Param			weekdays			query		string	false	"Отображаемые дни недели, 0=вс (по умолчанию 1,2,3,4,5)"
// @Param			retain_current_week	query		bool	false	"Удерживать прошедшие события текущей недели (по умолчанию true)"
// @Success		200					{object}	AgendaResponse			"Афиша недели"
// @Failure		400					{object}	response.ErrorResponse	"Неверная конфигурация (CONFIG_OUT_OF_RANGE, VALIDATION_ERROR)"
// @Failure		404					{object}	response.ErrorResponse	"Экран не найден (SCREEN_NOT_FOUND)"
// @Failure		500					{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/tv/{slug}/agenda [get]
func GetScreenAgendaHandler(c *gin.Context) {
	var screen models.Screen
	if err := storage.DB.Where("slug = ?", c.Param("slug")).First(&screen).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран с таким слагом не найден",
		})
		return
	}

	weekStart, err := schedule.ParseWeekStart(c.DefaultQuery("week_start", "sunday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "CONFIG_OUT_OF_RANGE",
			Message: "Неверное начало недели",
			Details: err.Error(),
		})
		return
	}

	weekdays, err := parseWeekdays(c.DefaultQuery("weekdays", "1,2,3,4,5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Дни недели должны быть числами от 0 до 6 через запятую",
		})
		return
	}

	retain := c.DefaultQuery("retain_current_week", "true") == "true"

	records, err := storage.LoadEventsSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении событий",
		})
		return
	}

	now := time.Now()
	events, problems := schedule.Normalize(records, venue.Location)
	screenEvents := schedule.ForScreen(events, screen.ID, now, retain, weekStart, venue.Location)

	columns, err := schedule.BuildWeekAgenda(now, weekStart, weekdays, screenEvents, venue.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "CONFIG_OUT_OF_RANGE",
			Message: "Неверная конфигурация афиши",
			Details: err.Error(),
		})
		return
	}

	result := AgendaResponse{
		Screen:    toScreenResponse(screen),
		WeekStart: weekStart.String(),
		Columns:   make([]AgendaColumnResponse, 0, len(columns)),
		Problems:  problems,
	}
	for _, col := range columns {
		result.Columns = append(result.Columns, AgendaColumnResponse{
			Date:    col.Date.Format(schedule.DayKeyLayout),
			Weekday: int(col.Weekday),
			IsToday: col.IsToday,
			Events:  toEventViews(col.Events, now),
		})
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/schedule"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/venue"

	"github.com/gin-gonic/gin"
)

// CalendarCellResponse — ячейка месячной сетки: видимые события после
// политики переполнения и счетчик скрытых.
type CalendarCellResponse struct {
	Date             string      `json:"date"`
	InReferenceMonth bool        `json:"in_reference_month"`
	VisibleEvents    []EventView `json:"visible_events"`
	HiddenCount      int         `json:"hidden_count"`
}

// MonthGridResponse — месячная сетка админского календаря. Problems содержит
// записи, исключенные из проекции из-за нечитаемых данных.
type MonthGridResponse struct {
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	WeekStart  string                 `json:"week_start"`
	MaxVisible int                    `json:"max_visible"`
	Cells      []CalendarCellResponse `json:"cells"`
	Problems   []schedule.Diagnostic  `json:"problems,omitempty"`
}

// @Summary		Месячная сетка календаря
// @Description	Строит сетку месяца полными неделями с политикой переполнения ячеек
// @Tags			calendar
// @Produce		json
// @Security		BearerAuth
// @Param			year		query		int		false	"Год (по умолчанию текущий)"
// @Param			month		query		int		false	"Месяц 1-12 (по умолчанию текущий)"
// @Param			week_start	query		string	false	"Начало недели: sunday или monday (по умолчанию sunday)"
// @Param			max_visible	query		int		false	"Лимит видимых событий в ячейке (по умолчанию 3)"
// @Success		200			{object}	MonthGridResponse		"Сетка месяца"
// @Failure		400			{object}	response.ErrorResponse	"Неверная конфигурация (CONFIG_OUT_OF_RANGE, VALIDATION_ERROR)"
// @Failure		500			{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/calendar/month [get]
func GetMonthGridHandler(c *gin.Context) {
	now := time.Now().In(venue.Location)

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Неверный формат года",
		})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Месяц должен быть числом от 1 до 12",
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

	maxVisible, err := strconv.Atoi(c.DefaultQuery("max_visible", "3"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Неверный формат max_visible",
		})
		return
	}
	// Ошибка конфигурации отсекается до построения сетки.
	if maxVisible < 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "CONFIG_OUT_OF_RANGE",
			Message: "Лимит видимых событий должен быть неотрицательным",
		})
		return
	}

	records, err := storage.LoadEventsSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении событий",
		})
		return
	}

	events, problems := schedule.Normalize(records, venue.Location)
	refMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, venue.Location)
	cells := schedule.BuildMonthGrid(refMonth, weekStart, events, venue.Location)

	nowInstant := time.Now()
	result := MonthGridResponse{
		Year:       year,
		Month:      month,
		WeekStart:  weekStart.String(),
		MaxVisible: maxVisible,
		Cells:      make([]CalendarCellResponse, 0, len(cells)),
		Problems:   problems,
	}

	for _, cell := range cells {
		visible, hidden, err := schedule.ApplyOverflow(cell.Events, maxVisible)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "CONFIG_OUT_OF_RANGE",
				Message: "Неверный лимит видимых событий",
				Details: err.Error(),
			})
			return
		}
		result.Cells = append(result.Cells, CalendarCellResponse{
			Date:             cell.Date.Format(schedule.DayKeyLayout),
			InReferenceMonth: cell.InReferenceMonth,
			VisibleEvents:    toEventViews(visible, nowInstant),
			HiddenCount:      hidden,
		})
	}

	c.JSON(http.StatusOK, result)
}

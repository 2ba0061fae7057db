package handlers

import (
	"net/http"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/schedule"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/venue"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
)

// @Summary		iCalendar-лента экрана
// @Description	Публичный эндпоинт: еще не закончившиеся события экрана в формате ICS, на него можно подписаться из любого календаря
// @Tags			tv
// @Produce		plain
// @Param			slug	path		string					true	"Слаг экрана"
// @Success		200		{string}	string					"iCalendar-лента"
// @Failure		404		{object}	response.ErrorResponse	"Экран не найден (SCREEN_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/tv/{slug}/agenda.ics [get]
func GetScreenICSHandler(c *gin.Context) {
	var screen models.Screen
	if err := storage.DB.Where("slug = ?", c.Param("slug")).First(&screen).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран с таким слагом не найден",
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

	now := time.Now()
	events, _ := schedule.Normalize(records, venue.Location)
	// Без удержания недели: в подписку попадают только актуальные события.
	screenEvents := schedule.ForScreen(events, screen.ID, now, false, schedule.WeekStartSunday, venue.Location)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Agora LineUp//Signage//PT")
	cal.SetXWRCalName(screen.Name)

	for _, e := range screenEvents {
		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Name)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
	}

	c.Header("Content-Disposition", "attachment; filename=\""+screen.Slug+".ics\"")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

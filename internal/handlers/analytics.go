package handlers

import (
	"net/http"

	"github.com/danielhinsching/agora-signage/internal/analytics"
	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/schedule"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/venue"

	"github.com/gin-gonic/gin"
)

// @Summary		Аналитика событий
// @Description	Сводка дашборда: теги, локации, пиковые часы, занятость экранов, конфликты расписания
// @Tags			analytics
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	analytics.Summary		"Сводка аналитики"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/analytics [get]
func GetAnalyticsHandler(c *gin.Context) {
	var dbEvents []models.Event
	if err := storage.DB.Find(&dbEvents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении событий",
		})
		return
	}

	var dbScreens []models.Screen
	if err := storage.DB.Find(&dbScreens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении экранов",
		})
		return
	}

	events := make([]schedule.Event, 0, len(dbEvents))
	for _, e := range dbEvents {
		events = append(events, e.ToDomain())
	}
	screens := make([]analytics.ScreenInfo, 0, len(dbScreens))
	for _, s := range dbScreens {
		screens = append(screens, analytics.ScreenInfo{ID: s.ID, Name: s.Name})
	}

	c.JSON(http.StatusOK, analytics.BuildSummary(events, screens, venue.Location))
}

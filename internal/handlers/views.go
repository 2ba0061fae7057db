package handlers

import (
	"log"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/schedule"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/ws"
)

// EventView — событие в ответах проекционных эндпоинтов, со статусом
// относительно момента запроса.
type EventView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	StartDateTime string          `json:"start_date_time"`
	EndDateTime   string          `json:"end_date_time"`
	ScreenIDs     []string        `json:"screen_ids"`
	Tags          []string        `json:"tags"`
	Status        schedule.Status `json:"status"`
}

func toEventView(e schedule.Event, now time.Time) EventView {
	return EventView{
		ID:            e.ID,
		Name:          e.Name,
		Location:      e.Location,
		StartDateTime: e.Start.UTC().Format(time.RFC3339),
		EndDateTime:   e.End.UTC().Format(time.RFC3339),
		ScreenIDs:     e.ScreenIDs,
		Tags:          e.Tags,
		Status:        schedule.Classify(now, e.Start, e.End),
	}
}

func toEventViews(events []schedule.Event, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, toEventView(e, now))
	}
	return views
}

// notifyScreens шлет сигнал обновления в комнаты экранов по их ID.
// Плеер по сигналу перечитывает афишу целиком.
func notifyScreens(screenIDs []string, eventType string) {
	if len(screenIDs) == 0 {
		return
	}
	var screens []models.Screen
	if err := storage.DB.Where("id IN ?", screenIDs).Find(&screens).Error; err != nil {
		log.Println("Ошибка поиска экранов для оповещения:", err)
		return
	}
	for _, s := range screens {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: eventType,
			Screen:    s.Slug,
		})
	}
}

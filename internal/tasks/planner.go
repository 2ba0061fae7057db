package tasks

import (
	"context"
	"log"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/storage"
	"github.com/danielhinsching/agora-signage/internal/venue"
	"github.com/danielhinsching/agora-signage/internal/ws"

	"github.com/robfig/cron/v3"
)

// NotifyDayChange рассылает всем подключенным плеерам сигнал о смене суток,
// чтобы они пересчитали колонку "сегодня" и окно текущей недели.
// Запускается в полночь по часовому поясу площадки.
func NotifyDayChange() {
	log.Println("Смена суток: оповещение плееров вывески.")
	ws.HubInstance.BroadcastToAll("day_changed", nil)
}

// CleanOldEvents удаляет события, закончившиеся больше 30 дней назад.
// Порог с запасом больше недели, чтобы правило удержания текущей недели
// на афишах никогда не пересекалось с очисткой.
func CleanOldEvents() {
	threshold := time.Now().AddDate(0, 0, -30)
	if err := storage.DB.Where("end_time < ?", threshold).Delete(&models.Event{}).Error; err != nil {
		log.Println("Ошибка при удалении устаревших событий:", err)
		return
	}
	storage.InvalidateEventsSnapshot(context.Background())
	log.Println("Устаревшие события успешно удалены.")
}

// RefreshEventsSnapshot перечитывает снимок событий в кэш.
func RefreshEventsSnapshot() {
	storage.RefreshEventsSnapshot(context.Background())
}

// InitScheduler инициализирует планировщик cron-задач в часовом поясе площадки.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(venue.Location))

	// Смена суток — ровно в полночь площадки.
	_, err := c.AddFunc("0 0 0 * * *", NotifyDayChange)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи NotifyDayChange:", err)
	}

	// Очистка устаревших событий каждый день в 03:00.
	_, err = c.AddFunc("0 0 3 * * *", CleanOldEvents)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanOldEvents:", err)
	}

	// Прогрев снимка событий каждые 5 минут.
	_, err = c.AddFunc("0 */5 * * * *", RefreshEventsSnapshot)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи RefreshEventsSnapshot:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}

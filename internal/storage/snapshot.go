package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/schedule"
)

// Ключ и TTL снимка событий в Redis. Снимок — полный набор событий в
// сыром (строковом) виде; проекции всегда пересчитываются из полного
// снимка, инкрементальных обновлений нет.
const (
	eventsSnapshotKey = "events_snapshot"
	eventsSnapshotTTL = 30 * time.Second
)

// LoadEventsSnapshot возвращает полный снимок событий: сначала из Redis,
// при промахе — из базы с прогревом кэша. Ошибка кэша не фатальна, снимок
// тогда читается напрямую из базы.
func LoadEventsSnapshot(ctx context.Context) ([]schedule.EventRecord, error) {
	if RedisClient != nil {
		cached, err := RedisClient.Get(ctx, eventsSnapshotKey).Result()
		if err == nil && cached != "" {
			var records []schedule.EventRecord
			if err := json.Unmarshal([]byte(cached), &records); err == nil {
				return records, nil
			}
		}
	}

	var events []models.Event
	if err := DB.Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	records := make([]schedule.EventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, e.ToRecord())
	}

	if RedisClient != nil {
		if data, err := json.Marshal(records); err == nil {
			RedisClient.Set(ctx, eventsSnapshotKey, string(data), eventsSnapshotTTL)
		}
	}
	return records, nil
}

// InvalidateEventsSnapshot сбрасывает кэш после изменения событий, чтобы
// плееры при следующем обновлении получили свежий снимок.
func InvalidateEventsSnapshot(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Del(ctx, eventsSnapshotKey).Err(); err != nil {
		log.Println("Ошибка сброса кэша снимка событий:", err)
	}
}

// RefreshEventsSnapshot принудительно перечитывает снимок из базы в кэш.
func RefreshEventsSnapshot(ctx context.Context) {
	InvalidateEventsSnapshot(ctx)
	if _, err := LoadEventsSnapshot(ctx); err != nil {
		log.Println("Ошибка обновления снимка событий:", err)
	}
}

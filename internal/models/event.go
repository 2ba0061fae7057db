package models

import (
	"time"

	"github.com/danielhinsching/agora-signage/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event — событие площадки. Инвариант EndTime > StartTime проверяется
// в обработчиках создания и редактирования, а не в проекционном движке.
type Event struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Location  string
	StartTime time.Time `gorm:"index;not null"`
	EndTime   time.Time `gorm:"not null"`
	ScreenIDs string    // Список ID экранов через запятую, например "id1,id2"
	Tags      string    // Список тегов через запятую
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate выдает событию UUID, если идентификатор не задан.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ToDomain переводит запись БД в событие проекционного движка.
func (e Event) ToDomain() schedule.Event {
	return schedule.Event{
		ID:        e.ID,
		Name:      e.Name,
		Location:  e.Location,
		Start:     e.StartTime,
		End:       e.EndTime,
		ScreenIDs: SplitList(e.ScreenIDs),
		Tags:      SplitList(e.Tags),
	}
}

// ToRecord переводит запись БД в формат снимка для кэша и подписок.
func (e Event) ToRecord() schedule.EventRecord {
	return schedule.EventRecord{
		ID:            e.ID,
		Name:          e.Name,
		Location:      e.Location,
		StartDateTime: e.StartTime.UTC().Format(time.RFC3339),
		EndDateTime:   e.EndTime.UTC().Format(time.RFC3339),
		ScreenIDs:     SplitList(e.ScreenIDs),
		Tags:          SplitList(e.Tags),
	}
}

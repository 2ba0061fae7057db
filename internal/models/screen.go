package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// Screen — экран вывески ("ТВ"). Slug — человекочитаемый ключ маршрута
// плеера, уникальность обеспечивается индексом и проверкой при создании.
type Screen struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Orientation string `gorm:"not null;default:horizontal"` // horizontal | vertical
	ActiveImage string // Необязательная картинка-заставка (base64)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate выдает экрану UUID, если идентификатор не задан.
func (s *Screen) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

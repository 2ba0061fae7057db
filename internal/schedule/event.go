package schedule

import "time"

// Event — нормализованное событие площадки, с которым работают все проекции.
// Start и End — абсолютные моменты времени; валидность End > Start
// гарантируется на этапе создания события, а не внутри движка.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ScreenIDs []string  `json:"screen_ids"`
	Tags      []string  `json:"tags"`
}

// HasScreen проверяет, назначено ли событие на указанный экран.
func (e Event) HasScreen(screenID string) bool {
	for _, id := range e.ScreenIDs {
		if id == screenID {
			return true
		}
	}
	return false
}

package schedule

import (
	"errors"
	"time"
)

// AgendaColumn — колонка недельной афиши для одного дня недели.
// В отличие от месячной сетки лимита видимых событий здесь нет:
// прокрутка длинного списка — забота слоя отображения.
type AgendaColumn struct {
	Date    time.Time    `json:"date"`
	Weekday time.Weekday `json:"weekday"`
	IsToday bool         `json:"is_today"`
	Events  []Event      `json:"events"`
}

// BusinessDays — будние колонки афиши, раскладка оригинального плеера.
var BusinessDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// AllWeekdays — все семь дней недели.
var AllWeekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// BuildWeekAgenda строит колонки недели, содержащей refInstant. Колонка,
// чья дата совпадает с днем refInstant, помечается как сегодняшняя.
// included задает отображаемые дни недели (например, только будни);
// пустой список — ошибка конфигурации, а не данных.
func BuildWeekAgenda(refInstant time.Time, ws WeekStart, included []time.Weekday, events []Event, loc *time.Location) ([]AgendaColumn, error) {
	if len(included) == 0 {
		return nil, errors.New("schedule: список отображаемых дней недели пуст")
	}

	weekStart := StartOfWeek(refInstant, ws, loc)
	weekEnd := EndOfWeek(refInstant, ws, loc)
	buckets := ByWeekday(events, weekStart, weekEnd, loc)

	want := make(map[time.Weekday]bool, len(included))
	for _, wd := range included {
		want[wd] = true
	}
	today := DayKey(refInstant, loc)

	columns := make([]AgendaColumn, 0, len(included))
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		wd := day.Weekday()
		if !want[wd] {
			continue
		}
		columns = append(columns, AgendaColumn{
			Date:    day,
			Weekday: wd,
			IsToday: day.Format(DayKeyLayout) == today,
			Events:  buckets[wd],
		})
	}
	return columns, nil
}

package schedule

import (
	"fmt"
	"time"
)

// WeekStart — соглашение о первом дне недели в календарных проекциях.
type WeekStart int

const (
	WeekStartSunday WeekStart = iota
	WeekStartMonday
)

// ParseWeekStart разбирает значение соглашения из конфигурации или запроса.
func ParseWeekStart(s string) (WeekStart, error) {
	switch s {
	case "sunday":
		return WeekStartSunday, nil
	case "monday":
		return WeekStartMonday, nil
	default:
		return WeekStartSunday, fmt.Errorf("schedule: неизвестное начало недели %q (ожидается sunday или monday)", s)
	}
}

// FirstWeekday возвращает день недели, с которого начинается неделя.
func (ws WeekStart) FirstWeekday() time.Weekday {
	if ws == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

func (ws WeekStart) String() string {
	if ws == WeekStartMonday {
		return "monday"
	}
	return "sunday"
}

// StartOfWeek возвращает полночь первого дня недели, содержащей t,
// в часовом поясе площадки loc.
func StartOfWeek(t time.Time, ws WeekStart, loc *time.Location) time.Time {
	lt := t.In(loc)
	day := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	diff := (int(day.Weekday()) - int(ws.FirstWeekday()) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// EndOfWeek возвращает последний момент недели, содержащей t (включительная
// граница для отбора по началу события).
func EndOfWeek(t time.Time, ws WeekStart, loc *time.Location) time.Time {
	return StartOfWeek(t, ws, loc).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

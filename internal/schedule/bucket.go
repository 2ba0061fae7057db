package schedule

import (
	"sort"
	"time"
)

// DayKeyLayout — формат ключа календарного дня (локальная дата площадки).
const DayKeyLayout = "2006-01-02"

// DayKey возвращает ключ календарного дня для момента t в зоне loc.
// Якорем группировки всегда служит начало события.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// ByCalendarDay группирует события по локальной дате начала. Внутри дня
// события отсортированы по возрастанию времени начала, при равенстве — по ID,
// чтобы порядок оставался детерминированным.
func ByCalendarDay(events []Event, loc *time.Location) map[string][]Event {
	buckets := make(map[string][]Event)
	for _, e := range events {
		key := DayKey(e.Start, loc)
		buckets[key] = append(buckets[key], e)
	}
	for key := range buckets {
		sortByStart(buckets[key])
	}
	return buckets
}

// ByWeekday группирует по дню недели события, чье начало попадает в окно
// [weekStart, weekEnd] включительно. События вне окна молча отбрасываются —
// за выбор правильного окна отвечает вызывающая сторона.
func ByWeekday(events []Event, weekStart, weekEnd time.Time, loc *time.Location) map[time.Weekday][]Event {
	buckets := make(map[time.Weekday][]Event)
	for _, e := range events {
		if e.Start.Before(weekStart) || e.Start.After(weekEnd) {
			continue
		}
		wd := e.Start.In(loc).Weekday()
		buckets[wd] = append(buckets[wd], e)
	}
	for wd := range buckets {
		sortByStart(buckets[wd])
	}
	return buckets
}

func sortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start) {
			return events[i].ID < events[j].ID
		}
		return events[i].Start.Before(events[j].Start)
	})
}

package schedule

import "time"

// ForScreen отбирает события одного экрана для вывески: назначенные на экран
// и либо еще не закончившиеся, либо (при retainCurrentWeek) начавшиеся на
// текущей неделе. Удержание недели не дает афише резко пустеть сразу после
// окончания события: прошедшие события текущей недели остаются видимыми до
// смены недели. Результат отсортирован по времени начала.
// Функция чистая и пересчитывается при каждом обновлении данных.
func ForScreen(events []Event, screenID string, now time.Time, retainCurrentWeek bool, ws WeekStart, loc *time.Location) []Event {
	var weekStart, weekEnd time.Time
	if retainCurrentWeek {
		weekStart = StartOfWeek(now, ws, loc)
		weekEnd = EndOfWeek(now, ws, loc)
	}

	var result []Event
	for _, e := range events {
		if !e.HasScreen(screenID) {
			continue
		}
		if !e.End.Before(now) {
			result = append(result, e)
			continue
		}
		if retainCurrentWeek && !e.Start.Before(weekStart) && !e.Start.After(weekEnd) {
			result = append(result, e)
		}
	}
	sortByStart(result)
	return result
}

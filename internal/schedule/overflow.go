package schedule

import "fmt"

// ApplyOverflow обрезает список событий дня до maxVisible видимых и считает
// скрытые. Порядок не меняется: список уже отсортирован группировкой по дням.
// Отрицательный maxVisible — ошибка вызывающего кода, а не данных, поэтому
// она возвращается сразу, без молчаливого приведения к нулю.
// Инвариант: len(visible) + hidden == len(dayEvents).
func ApplyOverflow(dayEvents []Event, maxVisible int) ([]Event, int, error) {
	if maxVisible < 0 {
		return nil, 0, fmt.Errorf("schedule: maxVisible должен быть неотрицательным, получено %d", maxVisible)
	}
	if len(dayEvents) <= maxVisible {
		return dayEvents, 0, nil
	}
	return dayEvents[:maxVisible], len(dayEvents) - maxVisible, nil
}

package schedule

import "time"

// CalendarCell — одна ячейка месячной сетки. Производное представление:
// пересчитывается при каждом вызове, никогда не сохраняется и не мутируется.
type CalendarCell struct {
	Date             time.Time `json:"date"`
	InReferenceMonth bool      `json:"in_reference_month"`
	Events           []Event   `json:"events"`
}

// BuildMonthGrid строит месячную сетку полными неделями: от первого дня
// недели на 1-е число месяца или раньше до последнего дня недели на конец
// месяца или позже. Число строк зависит от месяца и соглашения о начале
// недели (4–6 недель), длина результата всегда кратна 7. Ячейки вне
// отчетного месяца не пропускаются, чтобы сетка оставалась прямоугольной.
func BuildMonthGrid(refMonth time.Time, ws WeekStart, events []Event, loc *time.Location) []CalendarCell {
	ref := refMonth.In(loc)
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := StartOfWeek(monthStart, ws, loc)
	gridEnd := StartOfWeek(monthEnd, ws, loc).AddDate(0, 0, 6)

	buckets := ByCalendarDay(events, loc)

	var cells []CalendarCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cells = append(cells, CalendarCell{
			Date:             day,
			InReferenceMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
			Events:           buckets[day.Format(DayKeyLayout)],
		})
	}
	return cells
}

package schedule

import "time"

// EventRecord — событие в том виде, в каком его отдают хранилище, кэш и
// подписки: времена строками RFC 3339. Разбор и отбраковка — в Normalize.
type EventRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	StartDateTime string   `json:"start_date_time"`
	EndDateTime   string   `json:"end_date_time"`
	ScreenIDs     []string `json:"screen_ids"`
	Tags          []string `json:"tags"`
}

// Diagnostic описывает запись, исключенную из проекции, чтобы админка могла
// подсветить битую запись, не теряя остальной календарь.
type Diagnostic struct {
	EventID string `json:"event_id"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
}

// Normalize превращает сырые записи в события движка. Запись с нечитаемым
// временем исключается целиком и попадает в диагностику: одна битая запись
// не должна ронять проекцию всего календаря. Вывернутые окна (end <= start)
// пропускаются как есть — их деградацию берут на себя Classify и Overlaps.
// Пустой список экранов валиден: такое событие видно в админском календаре,
// но не попадает ни в одну афишу.
func Normalize(records []EventRecord, loc *time.Location) ([]Event, []Diagnostic) {
	events := make([]Event, 0, len(records))
	var diags []Diagnostic
	for _, r := range records {
		start, err := time.Parse(time.RFC3339, r.StartDateTime)
		if err != nil {
			diags = append(diags, Diagnostic{EventID: r.ID, Field: "start_date_time", Reason: err.Error()})
			continue
		}
		end, err := time.Parse(time.RFC3339, r.EndDateTime)
		if err != nil {
			diags = append(diags, Diagnostic{EventID: r.ID, Field: "end_date_time", Reason: err.Error()})
			continue
		}
		events = append(events, Event{
			ID:        r.ID,
			Name:      r.Name,
			Location:  r.Location,
			Start:     start.In(loc),
			End:       end.In(loc),
			ScreenIDs: r.ScreenIDs,
			Tags:      r.Tags,
		})
	}
	return events, diags
}

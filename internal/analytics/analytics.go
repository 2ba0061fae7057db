package analytics

import (
	"sort"
	"time"

	"github.com/danielhinsching/agora-signage/internal/schedule"
)

// NameCount — пара "название — количество" для диаграмм админки.
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HourCount — загруженность одного часа суток.
type HourCount struct {
	Hour   int `json:"hour"`
	Events int `json:"events"`
}

// WeekdayCount — число событий по дню недели (0 = воскресенье).
type WeekdayCount struct {
	Weekday int `json:"weekday"`
	Events  int `json:"events"`
}

// ScreenInfo — минимум сведений об экране, нужный для аналитики.
type ScreenInfo struct {
	ID   string
	Name string
}

// ScreenOccupancy — занятость экрана: сколько событий на него назначено
// и сколько часов контента это дает в сумме.
type ScreenOccupancy struct {
	ScreenID string  `json:"screen_id"`
	Name     string  `json:"name"`
	Events   int     `json:"events"`
	Hours    float64 `json:"hours"`
}

// Conflict — пара событий одного экрана с пересекающимися окнами.
type Conflict struct {
	ScreenID string `json:"screen_id"`
	EventA   string `json:"event_a"`
	EventB   string `json:"event_b"`
}

// Summary — сводка для дашборда аналитики.
type Summary struct {
	TotalEvents     int               `json:"total_events"`
	AvgDurationMin  float64           `json:"avg_duration_min"`
	MaxSimultaneous int               `json:"max_simultaneous"`
	Tags            []NameCount       `json:"tags"`
	Locations       []NameCount       `json:"locations"`
	PeakHours       []HourCount       `json:"peak_hours"`
	Weekdays        []WeekdayCount    `json:"weekdays"`
	Screens         []ScreenOccupancy `json:"screens"`
	Conflicts       []Conflict        `json:"conflicts"`
}

// BuildSummary собирает все метрики дашборда за один проход по данным.
// Как и проекции календаря, сводка пересчитывается целиком на каждый запрос.
func BuildSummary(events []schedule.Event, screens []ScreenInfo, loc *time.Location) Summary {
	return Summary{
		TotalEvents:     len(events),
		AvgDurationMin:  AvgDurationMinutes(events),
		MaxSimultaneous: MaxSimultaneous(events),
		Tags:            TagStats(events, 8),
		Locations:       LocationStats(events, 6),
		PeakHours:       PeakHours(events, loc),
		Weekdays:        WeekdayStats(events, loc),
		Screens:         Occupancy(events, screens),
		Conflicts:       ScreenConflicts(events),
	}
}

// TagStats считает распределение событий по тегам, топ-limit по убыванию.
func TagStats(events []schedule.Event, limit int) []NameCount {
	stats := make(map[string]int)
	for _, e := range events {
		for _, tag := range e.Tags {
			stats[tag]++
		}
	}
	return topCounts(stats, limit)
}

// LocationStats считает распределение событий по локациям, топ-limit.
func LocationStats(events []schedule.Event, limit int) []NameCount {
	stats := make(map[string]int)
	for _, e := range events {
		if e.Location == "" {
			continue
		}
		stats[e.Location]++
	}
	return topCounts(stats, limit)
}

// PeakHours строит почасовую гистограмму: каждый событийный час от начала
// до конца события добавляет единицу своему часу суток. Пустые часы
// в результат не попадают.
func PeakHours(events []schedule.Event, loc *time.Location) []HourCount {
	hours := make(map[int]int)
	for _, e := range events {
		for t := e.Start.In(loc); t.Before(e.End.In(loc)); t = t.Add(time.Hour) {
			hours[t.Hour()]++
		}
	}
	result := make([]HourCount, 0, len(hours))
	for h := 0; h < 24; h++ {
		if hours[h] > 0 {
			result = append(result, HourCount{Hour: h, Events: hours[h]})
		}
	}
	return result
}

// WeekdayStats считает события по дню недели начала. Пустые дни опускаются.
func WeekdayStats(events []schedule.Event, loc *time.Location) []WeekdayCount {
	days := make(map[time.Weekday]int)
	for _, e := range events {
		days[e.Start.In(loc).Weekday()]++
	}
	result := make([]WeekdayCount, 0, len(days))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if days[wd] > 0 {
			result = append(result, WeekdayCount{Weekday: int(wd), Events: days[wd]})
		}
	}
	return result
}

// Occupancy считает занятость каждого экрана: количество назначенных
// событий и суммарные часы контента.
func Occupancy(events []schedule.Event, screens []ScreenInfo) []ScreenOccupancy {
	result := make([]ScreenOccupancy, 0, len(screens))
	for _, s := range screens {
		occ := ScreenOccupancy{ScreenID: s.ID, Name: s.Name}
		for _, e := range events {
			if !e.HasScreen(s.ID) {
				continue
			}
			occ.Events++
			if e.End.After(e.Start) {
				occ.Hours += e.End.Sub(e.Start).Hours()
			}
		}
		result = append(result, occ)
	}
	return result
}

// AvgDurationMinutes — средняя длительность события в минутах,
// округленная до десятых. Вывернутые окна считаются нулевой длительностью.
func AvgDurationMinutes(events []schedule.Event) float64 {
	if len(events) == 0 {
		return 0
	}
	var total time.Duration
	for _, e := range events {
		if e.End.After(e.Start) {
			total += e.End.Sub(e.Start)
		}
	}
	avg := total.Minutes() / float64(len(events))
	return float64(int(avg*10+0.5)) / 10
}

// MaxSimultaneous — максимум одновременно идущих событий. Проверяются только
// моменты начала событий: в любой другой точке число активных не больше,
// чем в ближайшем предшествующем начале.
func MaxSimultaneous(events []schedule.Event) int {
	max := 0
	for _, e := range events {
		count := 0
		for _, other := range events {
			if !other.Start.After(e.Start) && other.End.After(e.Start) {
				count++
			}
		}
		if count > max {
			max = count
		}
	}
	return max
}

// ScreenConflicts находит пары событий с пересекающимися окнами,
// назначенные на один и тот же экран, — расписание вывески их покажет
// одновременно, и администратору стоит об этом знать.
func ScreenConflicts(events []schedule.Event) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if !schedule.Overlaps(a.Start, a.End, b.Start, b.End) {
				continue
			}
			for _, screenID := range a.ScreenIDs {
				if b.HasScreen(screenID) {
					conflicts = append(conflicts, Conflict{
						ScreenID: screenID,
						EventA:   a.ID,
						EventB:   b.ID,
					})
				}
			}
		}
	}
	return conflicts
}

func topCounts(stats map[string]int, limit int) []NameCount {
	result := make([]NameCount, 0, len(stats))
	for name, value := range stats {
		result = append(result, NameCount{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value == result[j].Value {
			return result[i].Name < result[j].Name
		}
		return result[i].Value > result[j].Value
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

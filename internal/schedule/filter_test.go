package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForScreenAssignment(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		testEvent("mine", now.Add(time.Hour), now.Add(2*time.Hour), "tv-1"),
		testEvent("other", now.Add(time.Hour), now.Add(2*time.Hour), "tv-2"),
		// Пустой список экранов: событие не попадает ни в одну афишу.
		testEvent("unassigned", now.Add(time.Hour), now.Add(2*time.Hour)),
	}

	result := ForScreen(events, "tv-1", now, true, WeekStartSunday, time.UTC)
	assert.Len(t, result, 1)
	assert.Equal(t, "mine", result[0].ID)
}

func TestForScreenRetention(t *testing.T) {
	// Среда 4 июня 2025, неделя с воскресенья 1 июня.
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		// Активное прямо сейчас.
		testEvent("active", now.Add(-time.Hour), now.Add(time.Hour), "tv-1"),
		// Закончилось в понедельник этой недели.
		testEvent("this-week", time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), "tv-1"),
		// Закончилось на прошлой неделе.
		testEvent("last-week", time.Date(2025, 5, 28, 10, 0, 0, 0, time.UTC), time.Date(2025, 5, 28, 11, 0, 0, 0, time.UTC), "tv-1"),
		// Предстоящее на следующей неделе: еще не закончилось, остается всегда.
		testEvent("upcoming", time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC), "tv-1"),
	}

	// С удержанием текущей недели прошедшее событие этой недели видно.
	result := ForScreen(events, "tv-1", now, true, WeekStartSunday, time.UTC)
	ids := make([]string, 0, len(result))
	for _, e := range result {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"this-week", "active", "upcoming"}, ids)

	// Без удержания остаются только не закончившиеся.
	result = ForScreen(events, "tv-1", now, false, WeekStartSunday, time.UTC)
	ids = ids[:0]
	for _, e := range result {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"active", "upcoming"}, ids)
}

func TestForScreenEndBoundary(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		// Закончилось ровно сейчас: end не раньше now, событие остается.
		testEvent("just-ended", now.Add(-time.Hour), now, "tv-1"),
	}

	result := ForScreen(events, "tv-1", now, false, WeekStartSunday, time.UTC)
	assert.Len(t, result, 1)
}

func TestForScreenAndAgendaTogether(t *testing.T) {
	// Понедельник 2 июня 2025.
	mon := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)
	events := []Event{
		testEvent("e1", mon.Add(9*time.Hour), mon.Add(10*time.Hour), "s1"),
		testEvent("e2", mon.Add(9*time.Hour+30*time.Minute), mon.Add(11*time.Hour), "s1", "s2"),
		testEvent("e3", tue.Add(14*time.Hour), tue.Add(15*time.Hour), "s2"),
	}
	now := mon.Add(9*time.Hour + 45*time.Minute)

	columns, err := BuildWeekAgenda(now, WeekStartSunday, BusinessDays, events, time.UTC)
	assert.NoError(t, err)
	assert.Len(t, columns[0].Events, 2)
	assert.Equal(t, "e1", columns[0].Events[0].ID)
	assert.Equal(t, "e2", columns[0].Events[1].ID)
	assert.Len(t, columns[1].Events, 1)

	s1 := ForScreen(events, "s1", now, true, WeekStartSunday, time.UTC)
	assert.Len(t, s1, 2)
	assert.Equal(t, "e1", s1[0].ID)
	assert.Equal(t, "e2", s1[1].ID)
	assert.Equal(t, StatusActive, Classify(now, s1[0].Start, s1[0].End))
	assert.Equal(t, StatusActive, Classify(now, s1[1].Start, s1[1].End))

	s2 := ForScreen(events, "s2", now, true, WeekStartSunday, time.UTC)
	assert.Len(t, s2, 2)
	assert.Equal(t, "e2", s2[0].ID)
	assert.Equal(t, "e3", s2[1].ID)
}

func TestForScreenSortedByStart(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		testEvent("later", now.Add(3*time.Hour), now.Add(4*time.Hour), "tv-1"),
		testEvent("sooner", now.Add(time.Hour), now.Add(2*time.Hour), "tv-1"),
	}

	result := ForScreen(events, "tv-1", now, true, WeekStartSunday, time.UTC)
	assert.Equal(t, "sooner", result[0].ID)
	assert.Equal(t, "later", result[1].ID)
}

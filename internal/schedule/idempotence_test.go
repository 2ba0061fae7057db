package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectionsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	events := []Event{
		testEvent("a", now.Add(-2*time.Hour), now.Add(-time.Hour), "tv-1"),
		testEvent("b", now.Add(-30*time.Minute), now.Add(time.Hour), "tv-1", "tv-2"),
		testEvent("c", time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC), time.Date(2025, 6, 6, 11, 0, 0, 0, time.UTC), "tv-2"),
	}

	// Повторный вызов с теми же входами дает структурно идентичный результат.
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	grid1 := BuildMonthGrid(ref, WeekStartSunday, events, time.UTC)
	grid2 := BuildMonthGrid(ref, WeekStartSunday, events, time.UTC)
	assert.Equal(t, grid1, grid2)

	cols1, err1 := BuildWeekAgenda(now, WeekStartSunday, BusinessDays, events, time.UTC)
	cols2, err2 := BuildWeekAgenda(now, WeekStartSunday, BusinessDays, events, time.UTC)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, cols1, cols2)

	assert.Equal(t,
		ForScreen(events, "tv-1", now, true, WeekStartSunday, time.UTC),
		ForScreen(events, "tv-1", now, true, WeekStartSunday, time.UTC))
}

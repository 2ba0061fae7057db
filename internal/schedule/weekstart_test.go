package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekStart(t *testing.T) {
	ws, err := ParseWeekStart("sunday")
	assert.NoError(t, err)
	assert.Equal(t, WeekStartSunday, ws)

	ws, err = ParseWeekStart("monday")
	assert.NoError(t, err)
	assert.Equal(t, WeekStartMonday, ws)

	_, err = ParseWeekStart("wednesday")
	assert.Error(t, err)
}

func TestStartOfWeek(t *testing.T) {
	// Среда 4 июня 2025.
	wed := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

	sunday := StartOfWeek(wed, WeekStartSunday, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), sunday)

	monday := StartOfWeek(wed, WeekStartMonday, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), monday)
}

func TestStartOfWeekOnBoundaryDay(t *testing.T) {
	// Воскресенье 1 июня 2025: при воскресном начале неделя начинается в этот
	// же день, при понедельничном — в предыдущий понедельник.
	sun := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), StartOfWeek(sun, WeekStartSunday, time.UTC))
	assert.Equal(t, time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC), StartOfWeek(sun, WeekStartMonday, time.UTC))
}

func TestEndOfWeek(t *testing.T) {
	wed := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)

	end := EndOfWeek(wed, WeekStartSunday, time.UTC)
	// Последний момент субботы 7 июня.
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), end)

	end = EndOfWeek(wed, WeekStartMonday, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), end)
}

func TestStartOfWeekUsesVenueLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	// 00:30 UTC воскресенья — еще суббота в поясе площадки,
	// значит неделя площадки началась неделей раньше.
	instant := time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC)
	got := StartOfWeek(instant, WeekStartSunday, loc)
	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, loc).Format(time.RFC3339), got.Format(time.RFC3339))
}

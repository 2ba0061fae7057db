package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	records := []EventRecord{
		{
			ID:            "ok",
			Name:          "Лекция",
			StartDateTime: "2025-06-04T10:00:00Z",
			EndDateTime:   "2025-06-04T12:00:00Z",
			ScreenIDs:     []string{"tv-1"},
			Tags:          []string{"лекция"},
		},
	}

	events, diags := Normalize(records, time.UTC)
	assert.Empty(t, diags)
	assert.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ID)
	assert.Equal(t, time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, []string{"tv-1"}, events[0].ScreenIDs)
}

func TestNormalizeMalformedTimestamp(t *testing.T) {
	records := []EventRecord{
		{ID: "bad-start", StartDateTime: "вчера", EndDateTime: "2025-06-04T12:00:00Z"},
		{ID: "bad-end", StartDateTime: "2025-06-04T10:00:00Z", EndDateTime: ""},
		{ID: "ok", StartDateTime: "2025-06-04T10:00:00Z", EndDateTime: "2025-06-04T12:00:00Z"},
	}

	events, diags := Normalize(records, time.UTC)

	// Битые записи исключаются поштучно, остальные выживают.
	assert.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ID)

	assert.Len(t, diags, 2)
	assert.Equal(t, "bad-start", diags[0].EventID)
	assert.Equal(t, "start_date_time", diags[0].Field)
	assert.Equal(t, "bad-end", diags[1].EventID)
	assert.Equal(t, "end_date_time", diags[1].Field)
}

func TestNormalizeInvertedWindowKept(t *testing.T) {
	// Вывернутое окно — читаемая запись, ее деградацию берет на себя Classify.
	records := []EventRecord{
		{ID: "inv", StartDateTime: "2025-06-04T12:00:00Z", EndDateTime: "2025-06-04T10:00:00Z"},
	}

	events, diags := Normalize(records, time.UTC)
	assert.Empty(t, diags)
	assert.Len(t, events, 1)
	assert.True(t, events[0].End.Before(events[0].Start))
}

func TestNormalizeConvertsToVenueLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	records := []EventRecord{
		{ID: "tz", StartDateTime: "2025-06-05T01:00:00Z", EndDateTime: "2025-06-05T02:00:00Z"},
	}

	events, _ := Normalize(records, loc)
	assert.Len(t, events, 1)
	// Момент тот же, но календарный день в поясе площадки — предыдущий.
	assert.Equal(t, "2025-06-04", events[0].Start.Format(DayKeyLayout))
	assert.True(t, events[0].Start.Equal(time.Date(2025, 6, 5, 1, 0, 0, 0, time.UTC)))
}

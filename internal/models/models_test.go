package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a"}, SplitList("a"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a,b,c"))
	// Пробелы и пустые элементы отбрасываются.
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , ,b,"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", JoinList(nil))
	assert.Equal(t, "a,b", JoinList([]string{"a", "b"}))
	// Связка обратима для нормализованных списков.
	assert.Equal(t, []string{"tv-1", "tv-2"}, SplitList(JoinList([]string{"tv-1", "tv-2"})))
}

func TestEventToDomain(t *testing.T) {
	start := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	e := Event{
		ID:        "evt-1",
		Name:      "Лекция",
		Location:  "Аудитория 1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		ScreenIDs: "tv-1,tv-2",
		Tags:      "лекция,наука",
	}

	d := e.ToDomain()
	assert.Equal(t, "evt-1", d.ID)
	assert.Equal(t, start, d.Start)
	assert.Equal(t, []string{"tv-1", "tv-2"}, d.ScreenIDs)
	assert.Equal(t, []string{"лекция", "наука"}, d.Tags)
	assert.True(t, d.HasScreen("tv-2"))
	assert.False(t, d.HasScreen("tv-3"))
}

func TestEventToRecord(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	start := time.Date(2025, 6, 4, 10, 0, 0, 0, loc)
	e := Event{
		ID:        "evt-1",
		Name:      "Лекция",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		ScreenIDs: "tv-1",
	}

	r := e.ToRecord()
	// Снимок хранит времена в UTC, момент не меняется.
	assert.Equal(t, "2025-06-04T13:00:00Z", r.StartDateTime)
	assert.Equal(t, "2025-06-04T14:00:00Z", r.EndDateTime)
	assert.Equal(t, []string{"tv-1"}, r.ScreenIDs)
}

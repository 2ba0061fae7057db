package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildMonthGridFebruary2021(t *testing.T) {
	// Февраль 2021 начинается в понедельник и длится ровно 4 недели:
	// при понедельничном начале сетка минимальна.
	ref := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	cells := BuildMonthGrid(ref, WeekStartMonday, nil, time.UTC)
	assert.Len(t, cells, 28)
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.Equal(t, time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC), cells[len(cells)-1].Date)
	for _, cell := range cells {
		assert.True(t, cell.InReferenceMonth)
	}

	// Тот же месяц при воскресном начале захватывает хвосты соседних месяцев.
	cells = BuildMonthGrid(ref, WeekStartSunday, nil, time.UTC)
	assert.Len(t, cells, 35)
	assert.Equal(t, time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.Equal(t, time.Date(2021, 3, 6, 0, 0, 0, 0, time.UTC), cells[len(cells)-1].Date)
	assert.False(t, cells[0].InReferenceMonth)
	assert.False(t, cells[len(cells)-1].InReferenceMonth)
}

func TestBuildMonthGridSixWeeks(t *testing.T) {
	// Август 2025 при воскресном начале растягивается на 6 строк.
	ref := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	cells := BuildMonthGrid(ref, WeekStartSunday, nil, time.UTC)
	assert.Len(t, cells, 42)
	assert.Equal(t, time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.Equal(t, time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC), cells[len(cells)-1].Date)
}

func TestBuildMonthGridAlwaysFullWeeks(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		ref := time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC)
		for _, ws := range []WeekStart{WeekStartSunday, WeekStartMonday} {
			cells := BuildMonthGrid(ref, ws, nil, time.UTC)
			assert.Zero(t, len(cells)%7, "месяц %v, начало недели %v", month, ws)
			assert.GreaterOrEqual(t, len(cells), 28)
			assert.LessOrEqual(t, len(cells), 42)
			// Первая ячейка лежит на первом дне недели.
			assert.Equal(t, ws.FirstWeekday(), cells[0].Date.Weekday())
		}
	}
}

func TestBuildMonthGridPlacesEvents(t *testing.T) {
	// Июль 2025 при воскресном начале: сетка с 29 июня по 2 августа.
	ref := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		testEvent("in", time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC), time.Date(2025, 7, 4, 11, 0, 0, 0, time.UTC)),
		// Начало в хвостовой ячейке соседнего месяца тоже видно в сетке.
		testEvent("tail", time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 11, 0, 0, 0, time.UTC)),
		// Далеко за пределами сетки: ни в одной ячейке.
		testEvent("far", time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC), time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)),
	}

	cells := BuildMonthGrid(ref, WeekStartSunday, events, time.UTC)
	assert.Len(t, cells, 35)

	total := 0
	for _, cell := range cells {
		total += len(cell.Events)
		switch cell.Date.Format(DayKeyLayout) {
		case "2025-07-04":
			assert.Len(t, cell.Events, 1)
			assert.Equal(t, "in", cell.Events[0].ID)
		case "2025-06-30":
			assert.False(t, cell.InReferenceMonth)
			assert.Len(t, cell.Events, 1)
			assert.Equal(t, "tail", cell.Events[0].ID)
		}
	}
	assert.Equal(t, 2, total)
}

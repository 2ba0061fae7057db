package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverflow(t *testing.T) {
	start := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	day := make([]Event, 0, 5)
	for i := 0; i < 5; i++ {
		day = append(day, testEvent(fmt.Sprintf("e%d", i), start.Add(time.Duration(i)*time.Hour), start.Add(time.Duration(i+1)*time.Hour)))
	}

	visible, hidden, err := ApplyOverflow(day, 3)
	assert.NoError(t, err)
	assert.Len(t, visible, 3)
	assert.Equal(t, 2, hidden)
	// Видимыми остаются первые по порядку.
	assert.Equal(t, "e0", visible[0].ID)
	assert.Equal(t, "e2", visible[2].ID)
}

func TestApplyOverflowUnderLimit(t *testing.T) {
	start := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	day := []Event{testEvent("only", start, start.Add(time.Hour))}

	visible, hidden, err := ApplyOverflow(day, 3)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Zero(t, hidden)

	// Пустой день и нулевой лимит тоже валидны.
	visible, hidden, err = ApplyOverflow(nil, 3)
	assert.NoError(t, err)
	assert.Empty(t, visible)
	assert.Zero(t, hidden)

	visible, hidden, err = ApplyOverflow(day, 0)
	assert.NoError(t, err)
	assert.Empty(t, visible)
	assert.Equal(t, 1, hidden)
}

func TestApplyOverflowNegativeLimit(t *testing.T) {
	_, _, err := ApplyOverflow(nil, -1)
	assert.Error(t, err)
}

func TestApplyOverflowConservation(t *testing.T) {
	start := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	for total := 0; total <= 6; total++ {
		day := make([]Event, 0, total)
		for i := 0; i < total; i++ {
			day = append(day, testEvent(fmt.Sprintf("e%d", i), start, start.Add(time.Hour)))
		}
		for limit := 0; limit <= 6; limit++ {
			visible, hidden, err := ApplyOverflow(day, limit)
			assert.NoError(t, err)
			// Видимые и скрытые в сумме дают исходный день.
			assert.Equal(t, total, len(visible)+hidden, "total=%d limit=%d", total, limit)
		}
	}
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	start := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	// За наносекунду до начала — предстоящее, ровно в начало — активное.
	assert.Equal(t, StatusUpcoming, Classify(start.Add(-time.Nanosecond), start, end))
	assert.Equal(t, StatusActive, Classify(start, start, end))

	assert.Equal(t, StatusActive, Classify(start.Add(time.Hour), start, end))

	// Ровно в момент окончания событие еще активно, наносекундой позже — прошло.
	assert.Equal(t, StatusActive, Classify(end, start, end))
	assert.Equal(t, StatusPast, Classify(end.Add(time.Nanosecond), start, end))
}

func TestClassifyInvertedWindow(t *testing.T) {
	start := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	// Вывернутое окно никогда не бывает активным.
	assert.Equal(t, StatusUpcoming, Classify(start.Add(-time.Minute), start, end))
	assert.Equal(t, StatusPast, Classify(start, start, end))
	assert.Equal(t, StatusPast, Classify(start.Add(time.Minute), start, end))

	// Нулевая длительность ведет себя так же.
	assert.Equal(t, StatusUpcoming, Classify(start.Add(-time.Nanosecond), start, start))
	assert.Equal(t, StatusPast, Classify(start, start, start))
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	// Частичное пересечение.
	assert.True(t, Overlaps(base, base.Add(2*time.Hour), base.Add(time.Hour), base.Add(3*time.Hour)))
	// Полное вложение.
	assert.True(t, Overlaps(base, base.Add(4*time.Hour), base.Add(time.Hour), base.Add(2*time.Hour)))
	// События встык не пересекаются.
	assert.False(t, Overlaps(base, base.Add(time.Hour), base.Add(time.Hour), base.Add(2*time.Hour)))
	// Непересекающиеся.
	assert.False(t, Overlaps(base, base.Add(time.Hour), base.Add(2*time.Hour), base.Add(3*time.Hour)))
	// Симметричность.
	assert.Equal(t,
		Overlaps(base, base.Add(2*time.Hour), base.Add(time.Hour), base.Add(3*time.Hour)),
		Overlaps(base.Add(time.Hour), base.Add(3*time.Hour), base, base.Add(2*time.Hour)))
}

func TestOverlapsInvertedWindow(t *testing.T) {
	base := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	// Вывернутое окно ни с чем не пересекается, даже если его начало лежит
	// строго внутри другого окна.
	assert.False(t, Overlaps(base.Add(time.Hour), base, base, base.Add(3*time.Hour)))
	assert.False(t, Overlaps(base, base.Add(3*time.Hour), base.Add(time.Hour), base))

	// Пустое (нулевой длительности) окно тоже.
	assert.False(t, Overlaps(base.Add(time.Hour), base.Add(time.Hour), base, base.Add(3*time.Hour)))
	assert.False(t, Overlaps(base, base.Add(3*time.Hour), base.Add(time.Hour), base.Add(time.Hour)))
}

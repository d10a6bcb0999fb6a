package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	w := Day(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), w.End)
}

func TestISOWeek_MidWeek(t *testing.T) {
	// 2024-01-17 is a Wednesday; the week starts Monday 2024-01-15.
	w := ISOWeek(time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), w.End)
}

func TestISOWeek_SundayBelongsToPreviousMonday(t *testing.T) {
	// 2024-01-21 is a Sunday; it belongs to the week that started 2024-01-15.
	w := ISOWeek(time.Date(2024, 1, 21, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestISOWeek_MondayStartsNewWeek(t *testing.T) {
	w := ISOWeek(time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestMonth(t *testing.T) {
	w := Month(time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestMonth_DecemberRollsIntoNextYear(t *testing.T) {
	w := Month(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestContains_HalfOpenBoundaries(t *testing.T) {
	w := Day(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))

	t.Run("start is inside", func(t *testing.T) {
		assert.True(t, w.Contains(w.Start))
	})

	t.Run("end is outside", func(t *testing.T) {
		assert.False(t, w.Contains(w.End))
	})

	t.Run("instant before start is outside", func(t *testing.T) {
		assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	})

	t.Run("last instant of the day is inside", func(t *testing.T) {
		assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	})
}

func TestMonthOf(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	w := MonthOf(2024, time.January, loc)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), w.End)
	assert.Equal(t, loc, w.Start.Location())
}

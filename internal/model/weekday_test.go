package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected Weekday
	}{
		{
			name:     "monday maps to 1",
			date:     time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			expected: Monday,
		},
		{
			name:     "tuesday maps to 2",
			date:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			expected: Tuesday,
		},
		{
			name:     "sunday maps to 7 not 0",
			date:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			expected: Sunday,
		},
		{
			name:     "leap day thursday",
			date:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expected: Thursday,
		},
		{
			name:     "time of day is irrelevant",
			date:     time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC),
			expected: Sunday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekdayOf(tt.date))
		})
	}
}

func TestScheduleContains(t *testing.T) {
	schedule := Schedule{Monday, Wednesday, Friday}

	assert.True(t, schedule.Contains(Monday))
	assert.True(t, schedule.Contains(Friday))
	assert.False(t, schedule.Contains(Tuesday))
	assert.False(t, schedule.Contains(Sunday))

	var empty Schedule
	assert.False(t, empty.Contains(Monday))
}

func TestEveryDay(t *testing.T) {
	every := EveryDay()
	assert.Len(t, every, 7)
	for w := Monday; w <= Sunday; w++ {
		assert.True(t, every.Contains(w))
	}
}

func TestWeekdayValid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(0).Valid())
	assert.False(t, Weekday(8).Valid())
}

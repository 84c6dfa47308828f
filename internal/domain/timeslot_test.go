package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridHours(t *testing.T) {
	hours := GridHours()

	require.Len(t, hours, SlotsPerDay)
	assert.Equal(t, GridOpenHour, hours[0])
	assert.Equal(t, GridCloseHour-1, hours[len(hours)-1])

	for i := 1; i < len(hours); i++ {
		assert.Equal(t, hours[i-1]+1, hours[i])
	}
}

func TestIsGridHour(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want bool
	}{
		{"before opening", 8, false},
		{"opening hour", 9, true},
		{"midday", 15, true},
		{"last slot", 22, true},
		{"closing hour", 23, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGridHour(tt.hour))
		})
	}
}

func TestIsHourAligned(t *testing.T) {
	aligned := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, IsHourAligned(aligned))

	assert.False(t, IsHourAligned(aligned.Add(30*time.Minute)))
	assert.False(t, IsHourAligned(aligned.Add(time.Second)))
	assert.False(t, IsHourAligned(aligned.Add(time.Nanosecond)))
}

func TestCoversHour(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, CoversHour(start, end, 9))
	assert.True(t, CoversHour(start, end, 10))
	assert.True(t, CoversHour(start, end, 11))
	// Правая граница интервала не занимает следующий час
	assert.False(t, CoversHour(start, end, 12))
}

func TestIsStartHour(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsStartHour(start, 10))
	assert.False(t, IsStartHour(start, 11))
}

func TestHourSlot(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, loc)
	slot := HourSlot(date, 14)

	assert.Equal(t, 2026, slot.Year())
	assert.Equal(t, time.September, slot.Month())
	assert.Equal(t, 1, slot.Day())
	assert.Equal(t, 14, slot.Hour())
	assert.Equal(t, 0, slot.Minute())
	assert.Equal(t, loc, slot.Location())
}

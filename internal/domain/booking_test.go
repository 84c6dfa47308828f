package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCompleted, true},
		{BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCompleted, false},
		{BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanBeCancelled())
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	hour := func(h int) time.Time {
		return time.Date(2026, 9, 1, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", hour(10), hour(11), true},
		{"covers whole interval", hour(9), hour(13), true},
		{"overlaps left edge", hour(9), hour(11), true},
		{"overlaps right edge", hour(11), hour(13), true},
		{"touches left edge", hour(9), hour(10), false},
		{"touches right edge", hour(12), hour(13), false},
		{"disjoint", hour(13), hour(14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_CoversHour(t *testing.T) {
	b := &Booking{
		StartTime: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC),
	}

	assert.False(t, b.CoversHour(17))
	assert.True(t, b.CoversHour(18))
	assert.True(t, b.CoversHour(19))
	assert.False(t, b.CoversHour(20))
}

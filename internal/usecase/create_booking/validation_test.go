package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

func slot(day, hour int) time.Time {
	return time.Date(2026, 9, day, hour, 0, 0, 0, time.UTC)
}

func TestValidateRequest(t *testing.T) {
	longNotes := strings.Repeat("x", domain.MaxNotesLength+1)

	valid := Request{
		UserID:   1,
		UserName: "Ana",
		CourtID:  2,
		Start:    slot(1, 10),
		End:      slot(1, 11),
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"valid", func(r *Request) {}, nil},
		{"non-positive user", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"non-positive court", func(r *Request) { r.CourtID = -1 }, ErrInvalidInput},
		{"empty user name", func(r *Request) { r.UserName = "" }, ErrInvalidInput},
		{"zero start", func(r *Request) { r.Start = time.Time{} }, ErrInvalidInput},
		{"notes too long", func(r *Request) { r.Notes = &longNotes }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validateRequest(&req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{"valid one hour", slot(1, 10), slot(1, 11), nil},
		{"valid max duration", slot(1, 10), slot(1, 14), nil},
		{"valid last slot", slot(1, 22), slot(1, 23), nil},
		{"not hour aligned", slot(1, 10).Add(30 * time.Minute), slot(1, 11), ErrNotHourAligned},
		{"end equals start", slot(1, 10), slot(1, 10), ErrInvalidTimeRange},
		{"end before start", slot(1, 11), slot(1, 10), ErrInvalidTimeRange},
		{"crosses midnight", slot(1, 22), slot(2, 9), ErrInvalidTimeRange},
		{"before opening", slot(1, 8), slot(1, 10), ErrOutsideWorkingHours},
		{"too long", slot(1, 10), slot(1, 15), ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTimeRange(tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotPast(t *testing.T) {
	now := slot(1, 12)

	assert.NoError(t, validateNotPast(slot(1, 12), now))
	assert.NoError(t, validateNotPast(slot(1, 15), now))
	require.ErrorIs(t, validateNotPast(slot(1, 11), now), ErrDateInPast)
}

func TestHasOverlap(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: slot(1, 10), EndTime: slot(1, 12), Status: domain.BookingStatusConfirmed},
		{StartTime: slot(1, 14), EndTime: slot(1, 15), Status: domain.BookingStatusCancelled},
	}
	classes := []*domain.ClassSession{
		{StartTime: slot(1, 18), EndTime: slot(1, 19), Status: domain.ClassStatusOpen},
	}

	assert.True(t, hasOverlap(slot(1, 11), slot(1, 13), bookings, classes))
	assert.True(t, hasOverlap(slot(1, 17), slot(1, 20), bookings, classes))

	// Соприкасающиеся границы не пересекаются
	assert.False(t, hasOverlap(slot(1, 12), slot(1, 14), bookings, classes))

	// Отменённая занятость не блокирует интервал
	assert.False(t, hasOverlap(slot(1, 14), slot(1, 15), bookings, classes))
}

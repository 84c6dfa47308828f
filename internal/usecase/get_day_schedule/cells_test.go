package get_day_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

func hourOn(day time.Time, h int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
}

func TestBuildCells_EmptyDay(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 8)

	cells, breaches := buildCells(nil, nil, now)

	require.Len(t, cells, domain.SlotsPerDay)
	assert.Empty(t, breaches)

	for _, cell := range cells {
		assert.Equal(t, CellFree, cell.Kind)
		assert.False(t, cell.IsStart)
		assert.Empty(t, cell.DisplayStatus)
		assert.Nil(t, cell.Booking)
		assert.Nil(t, cell.Class)
	}
}

func TestBuildCells_BookingStartAndContinuation(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 8)

	booking := &domain.Booking{
		ID:        42,
		UserID:    7,
		UserName:  "Carlos",
		StartTime: hourOn(day, 10),
		EndTime:   hourOn(day, 12),
		Status:    domain.BookingStatusConfirmed,
	}

	cells, breaches := buildCells([]*domain.Booking{booking}, nil, now)
	require.Len(t, cells, domain.SlotsPerDay)
	assert.Empty(t, breaches)

	// Индекс ячейки = час - GridOpenHour
	start := cells[10-domain.GridOpenHour]
	assert.Equal(t, CellBooking, start.Kind)
	assert.True(t, start.IsStart)
	require.NotNil(t, start.Booking)
	assert.Equal(t, int64(42), start.Booking.ID)
	assert.Equal(t, "Carlos", start.Booking.UserName)

	continuation := cells[11-domain.GridOpenHour]
	assert.Equal(t, CellBooking, continuation.Kind)
	assert.False(t, continuation.IsStart)
	assert.Nil(t, continuation.Booking)
	assert.Equal(t, start.DisplayStatus, continuation.DisplayStatus)

	after := cells[12-domain.GridOpenHour]
	assert.Equal(t, CellFree, after.Kind)
}

func TestBuildCells_CancelledOccupancyIgnored(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 8)

	booking := &domain.Booking{
		StartTime: hourOn(day, 10),
		EndTime:   hourOn(day, 11),
		Status:    domain.BookingStatusCancelled,
	}
	session := &domain.ClassSession{
		StartTime: hourOn(day, 10),
		EndTime:   hourOn(day, 11),
		Status:    domain.ClassStatusCancelled,
	}

	cells, breaches := buildCells([]*domain.Booking{booking}, []*domain.ClassSession{session}, now)

	assert.Empty(t, breaches)
	assert.Equal(t, CellFree, cells[10-domain.GridOpenHour].Kind)
}

func TestBuildCells_BookingWinsOverClassAndReportsBreach(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 8)

	booking := &domain.Booking{
		ID:        1,
		StartTime: hourOn(day, 15),
		EndTime:   hourOn(day, 17),
		Status:    domain.BookingStatusConfirmed,
	}
	session := &domain.ClassSession{
		ID:        2,
		StartTime: hourOn(day, 16),
		EndTime:   hourOn(day, 18),
		Status:    domain.ClassStatusOpen,
	}

	cells, breaches := buildCells([]*domain.Booking{booking}, []*domain.ClassSession{session}, now)

	// Час 16 покрыт и бронированием, и занятием
	assert.Equal(t, []int{16}, breaches)
	assert.Equal(t, CellBooking, cells[16-domain.GridOpenHour].Kind)

	// Часы без конфликта отражают фактическую занятость
	assert.Equal(t, CellBooking, cells[15-domain.GridOpenHour].Kind)
	assert.Equal(t, CellClass, cells[17-domain.GridOpenHour].Kind)
}

func TestBookingDisplayStatus(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 12)

	future := domain.Booking{StartTime: hourOn(day, 18), EndTime: hourOn(day, 19)}

	tests := []struct {
		name   string
		mutate func(b *domain.Booking)
		want   string
	}{
		{"cancelled", func(b *domain.Booking) {
			b.Status = domain.BookingStatusCancelled
		}, domain.LabelCancelada},
		{"completed by status", func(b *domain.Booking) {
			b.Status = domain.BookingStatusCompleted
		}, domain.LabelCompletada},
		{"completed by time", func(b *domain.Booking) {
			b.Status = domain.BookingStatusConfirmed
			b.StartTime = hourOn(day, 9)
			b.EndTime = hourOn(day, 10)
		}, domain.LabelCompletada},
		{"paid", func(b *domain.Booking) {
			b.Status = domain.BookingStatusConfirmed
			b.PaymentStatus = domain.PaymentStatusPaid
		}, domain.LabelPagada},
		{"pending unpaid", func(b *domain.Booking) {
			b.Status = domain.BookingStatusPending
			b.PaymentStatus = domain.PaymentStatusUnpaid
		}, domain.LabelPendiente},
		{"confirmed unpaid", func(b *domain.Booking) {
			b.Status = domain.BookingStatusConfirmed
			b.PaymentStatus = domain.PaymentStatusUnpaid
		}, domain.LabelConfirmada},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := future
			tt.mutate(&b)
			assert.Equal(t, tt.want, bookingDisplayStatus(&b, now))
		})
	}
}

func TestClassDisplayStatus(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	now := hourOn(day, 12)

	future := domain.ClassSession{StartTime: hourOn(day, 18), EndTime: hourOn(day, 19)}

	tests := []struct {
		name   string
		mutate func(c *domain.ClassSession)
		want   string
	}{
		{"cancelled", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusCancelled
		}, domain.LabelCancelada},
		{"completed by status", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusCompleted
		}, domain.LabelFinalizada},
		{"finished by time", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusOpen
			c.StartTime = hourOn(day, 9)
			c.EndTime = hourOn(day, 10)
		}, domain.LabelFinalizada},
		{"in progress", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusOpen
			c.StartTime = hourOn(day, 11)
			c.EndTime = hourOn(day, 13)
		}, domain.LabelEnCurso},
		{"full", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusFull
		}, domain.LabelCompleta},
		{"open", func(c *domain.ClassSession) {
			c.Status = domain.ClassStatusOpen
		}, domain.LabelAbierta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := future
			tt.mutate(&c)
			assert.Equal(t, tt.want, classDisplayStatus(&c, now))
		})
	}
}

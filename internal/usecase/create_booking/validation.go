package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.UserName == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTimeRange проверяет, что интервал корректен относительно почасовой сетки клуба
func validateTimeRange(start, end time.Time) error {
	if !domain.IsHourAligned(start) || !domain.IsHourAligned(end) {
		return ErrNotHourAligned
	}

	if !end.After(start) {
		return ErrInvalidTimeRange
	}

	// Интервал не должен пересекать границу дня
	if !isSameDay(start, end.Add(-time.Nanosecond)) {
		return ErrInvalidTimeRange
	}

	if start.Hour() < domain.GridOpenHour || end.Hour() > domain.GridCloseHour {
		return ErrOutsideWorkingHours
	}

	hours := int(end.Sub(start).Hours())
	if hours > domain.MaxBookingDurationHours {
		return fmt.Errorf("%w: maximum is %d hours", ErrTooLong, domain.MaxBookingDurationHours)
	}

	return nil
}

// validateNotPast проверяет, что интервал не начинается в прошлом
func validateNotPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrDateInPast
	}
	return nil
}

// hasOverlap проверяет пересечение интервала с активной занятостью корта
// Границы соприкасающихся интервалов пересечением не считаются
func hasOverlap(start, end time.Time, bookings []*domain.Booking, classes []*domain.ClassSession) bool {
	for _, booking := range bookings {
		if booking.IsActive() && booking.Overlaps(start, end) {
			return true
		}
	}

	for _, session := range classes {
		if session.IsActive() && session.Overlaps(start, end) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

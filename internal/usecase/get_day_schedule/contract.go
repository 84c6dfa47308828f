package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/internal/infra/cache/schedule"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByCourtAndDate(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

// ClassRepository интерфейс репозитория занятий
type ClassRepository interface {
	ListByCourtAndDate(ctx context.Context, courtID int64, date *time.Time, includeInactive bool) ([]*domain.ClassSession, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ScheduleCache интерфейс кэша дневной занятости
type ScheduleCache interface {
	GetDay(ctx context.Context, courtID int64, date time.Time) (*schedule.DayOccupancies, error)
	SetDay(ctx context.Context, courtID int64, date time.Time, day *schedule.DayOccupancies) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

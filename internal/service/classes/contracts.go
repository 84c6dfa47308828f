package classes

import (
	"context"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// ClassRepository интерфейс репозитория занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ClassSession, error)
	Cancel(ctx context.Context, id int64, reason string) error
	GetEnrollment(ctx context.Context, id int64) (*domain.Enrollment, error)
	ListEnrollments(ctx context.Context, classID int64) ([]*domain.Enrollment, error)
	Withdraw(ctx context.Context, enrollmentID int64) error
}

// ScheduleCache интерфейс кэша дневной занятости
type ScheduleCache interface {
	InvalidateDay(ctx context.Context, courtID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

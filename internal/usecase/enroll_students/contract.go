package enroll_students

import (
	"context"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// ClassRepository интерфейс репозитория занятий
type ClassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ClassSession, error)
	Enroll(ctx context.Context, classID, userID int64, userName string) (*domain.Enrollment, error)
}

// ScheduleCache интерфейс кэша дневной занятости
type ScheduleCache interface {
	InvalidateDay(ctx context.Context, courtID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_day_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/internal/infra/cache/schedule"
	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
)

// UseCase use case для получения расписания корта на день
type UseCase struct {
	bookingRepo   BookingRepository
	classRepo     ClassRepository
	courtRepo     CourtRepository
	scheduleCache ScheduleCache
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	classRepo ClassRepository,
	courtRepo CourtRepository,
	scheduleCache ScheduleCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		classRepo:     classRepo,
		courtRepo:     courtRepo,
		scheduleCache: scheduleCache,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения расписания
// Занятость дня читается через кэш (read-through): промах заполняется
// из БД, мутирующие операции инвалидируют день. Сетка собирается
// заново на каждый запрос, так как подписи статусов зависят от времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetDaySchedule: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем занятость дня через кэш
	day, err := uc.loadDay(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Собираем часовую сетку
	now := uc.timeProvider.Now()
	cells, breachHours := buildCells(day.Bookings, day.Classes, now)

	// Совпадение бронирования и занятия в одной ячейке означает нарушение
	// инварианта непересечения выше по потоку - логируем, не маскируем
	if len(breachHours) > 0 {
		uc.logger.Error("GetDaySchedule: occupancy invariant breach for court=%d, date=%s, hours=%v",
			req.CourtID, req.Date.Format(domain.DateFormat), breachHours)
	}

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Cells:   cells,
	}, nil
}

// loadDay читает занятость дня из кэша, при промахе - из БД с записью в кэш
func (uc *UseCase) loadDay(ctx context.Context, courtID int64, date time.Time) (*schedule.DayOccupancies, error) {
	cached, err := uc.scheduleCache.GetDay(ctx, courtID, date)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, schedule.ErrCacheMiss) {
		// Деградация кэша не блокирует чтение расписания
		uc.logger.Warn("GetDaySchedule: schedule cache unavailable: %v", err)
	}

	bookings, err := uc.bookingRepo.ListByCourtAndDate(ctx, domain.CourtBookingsFilter{
		CourtID: courtID,
		Date:    &date,
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	classes, err := uc.classRepo.ListByCourtAndDate(ctx, courtID, &date, false)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list classes: %v", err)
		return nil, fmt.Errorf("%w: failed to list classes: %v", ErrInternal, err)
	}

	day := &schedule.DayOccupancies{Bookings: bookings, Classes: classes}

	if err := uc.scheduleCache.SetDay(ctx, courtID, date, day); err != nil {
		uc.logger.Warn("GetDaySchedule: failed to store schedule in cache: %v", err)
	}

	return day, nil
}

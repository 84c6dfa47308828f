package create_class

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
)

// UseCase use case для создания группового занятия
type UseCase struct {
	classRepo     ClassRepository
	bookingRepo   BookingRepository
	courtRepo     CourtRepository
	scheduleCache ScheduleCache
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:     classRepo,
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		scheduleCache: scheduleCache,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания группового занятия
// Занятие резервирует корт так же, как бронирование: пересечение
// с любой активной занятостью недопустимо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateClass: court=%d, title=%q, start=%s, capacity=%d",
		req.CourtID, req.Title, req.Start.Format("2006-01-02 15:04"), req.MaxCapacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация интервала относительно почасовой сетки
	if err := validateTimeRange(req.Start, req.End); err != nil {
		uc.logger.Warn("CreateClass: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что интервал не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.Start, now); err != nil {
		uc.logger.Warn("CreateClass: time range is in the past: start=%s", req.Start)
		return nil, err
	}

	// 4. Получаем корт и проверяем его доступность
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateClass: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateClass: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateClass: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// Переменная для хранения результата
	var result *domain.ClassSession

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := req.Start

		// 5.1. Получаем активные бронирования корта на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByCourtAndDate(txCtx, domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &date,
		})
		if err != nil {
			uc.logger.Error("CreateClass: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 5.2. Получаем активные занятия корта на эту дату с блокировкой (FOR UPDATE)
		classes, err := uc.classRepo.ListByCourtAndDate(txCtx, req.CourtID, &date, false)
		if err != nil {
			uc.logger.Error("CreateClass: failed to list classes: %v", err)
			return fmt.Errorf("%w: failed to list classes: %v", ErrInternal, err)
		}

		// 5.3. Проверяем пересечение с существующей занятостью
		if hasOverlap(req.Start, req.End, bookings, classes) {
			uc.logger.Warn("CreateClass: slot conflict for court=%d, start=%s", req.CourtID, req.Start)
			return ErrSlotConflict
		}

		// 5.4. Создаем занятие в статусе OPEN
		session := &domain.ClassSession{
			CourtID:        req.CourtID,
			Title:          req.Title,
			InstructorName: req.InstructorName,
			StartTime:      req.Start,
			EndTime:        req.End,
			MaxCapacity:    req.MaxCapacity,
			PriceCents:     req.PriceCents,
			Status:         domain.ClassStatusOpen,
		}

		created, err := uc.classRepo.Create(txCtx, session)
		if err != nil {
			uc.logger.Error("CreateClass: failed to create class: %v", err)
			return fmt.Errorf("%w: failed to create class: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Инвалидируем кэш расписания на этот день
	// Ошибка инвалидации не фатальна: кэш истечет по TTL
	if err := uc.scheduleCache.InvalidateDay(ctx, req.CourtID, req.Start); err != nil {
		uc.logger.Warn("CreateClass: failed to invalidate schedule cache: %v", err)
	}

	uc.logger.Info("CreateClass: successfully created class id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		CourtID:        result.CourtID,
		Title:          result.Title,
		InstructorName: result.InstructorName,
		Start:          result.StartTime,
		End:            result.EndTime,
		MaxCapacity:    result.MaxCapacity,
		EnrolledCount:  result.EnrolledCount,
		PriceCents:     result.PriceCents,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

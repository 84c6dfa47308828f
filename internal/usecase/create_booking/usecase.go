package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	bookingRepo   BookingRepository
	classRepo     ClassRepository
	courtRepo     CourtRepository
	scheduleCache ScheduleCache
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	classRepo ClassRepository,
	courtRepo CourtRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		classRepo:     classRepo,
		courtRepo:     courtRepo,
		scheduleCache: scheduleCache,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// занятость корта на день блокируется через FOR UPDATE, после чего
// проверяется пересечение с активными бронированиями и занятиями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, start=%s, end=%s",
		req.UserID, req.CourtID, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация интервала относительно почасовой сетки
	if err := validateTimeRange(req.Start, req.End); err != nil {
		uc.logger.Warn("CreateBooking: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что интервал не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.Start, now); err != nil {
		uc.logger.Warn("CreateBooking: time range is in the past: start=%s", req.Start)
		return nil, err
	}

	// 4. Получаем корт и проверяем его доступность
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := req.Start

		// 5.1. Получаем активные бронирования корта на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByCourtAndDate(txCtx, domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 5.2. Получаем активные занятия корта на эту дату с блокировкой (FOR UPDATE)
		classes, err := uc.classRepo.ListByCourtAndDate(txCtx, req.CourtID, &date, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list classes: %v", err)
			return fmt.Errorf("%w: failed to list classes: %v", ErrInternal, err)
		}

		// 5.3. Проверяем пересечение с существующей занятостью
		if hasOverlap(req.Start, req.End, bookings, classes) {
			uc.logger.Warn("CreateBooking: slot conflict for court=%d, start=%s", req.CourtID, req.Start)
			return ErrSlotConflict
		}

		// 5.4. Создаем бронирование со снимком цены на момент создания
		hours := int(req.End.Sub(req.Start).Hours())
		booking := &domain.Booking{
			CourtID:            req.CourtID,
			UserID:             req.UserID,
			UserName:           req.UserName,
			StartTime:          req.Start,
			EndTime:            req.End,
			Status:             domain.BookingStatusPending,
			PaymentStatus:      domain.PaymentStatusUnpaid,
			PriceSnapshotCents: court.BasePriceCents * hours,
			Notes:              req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
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
		uc.logger.Warn("CreateBooking: failed to invalidate schedule cache: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:                 result.ID,
		CourtID:            result.CourtID,
		UserID:             result.UserID,
		UserName:           result.UserName,
		Start:              result.StartTime,
		End:                result.EndTime,
		Status:             string(result.Status),
		PaymentStatus:      string(result.PaymentStatus),
		PriceSnapshotCents: result.PriceSnapshotCents,
		Notes:              result.Notes,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}

package classes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	classRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/class"
	"github.com/m04kA/PCM-SchedulingService/internal/service/classes/models"
)

// Service сервис для работы с групповыми занятиями
type Service struct {
	classRepo     ClassRepository
	scheduleCache ScheduleCache
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(
	classRepo ClassRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		classRepo:     classRepo,
		scheduleCache: scheduleCache,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает занятие со списком участников
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClassWithEnrollmentsResponse, error) {
	s.logger.Info("GetByID: fetching class id=%d", id)

	session, err := s.getClass(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	enrollments, err := s.classRepo.ListEnrollments(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list enrollments for class id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched class id=%d with %d enrollments", id, len(enrollments))
	return &models.ClassWithEnrollmentsResponse{
		Class:       models.FromDomainClass(session),
		Enrollments: models.FromDomainEnrollmentList(enrollments),
	}, nil
}

// Cancel отменяет занятие с указанием причины
// Административная операция; отмена - терминальный статус,
// интервал корта немедленно освобождается
func (s *Service) Cancel(ctx context.Context, classID int64, req *models.CancelClassRequest) error {
	s.logger.Info("Cancel: cancelling class id=%d", classID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for class id=%d", classID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	session, err := s.getClass(ctx, classID, "Cancel")
	if err != nil {
		return err
	}

	if !session.CanBeCancelled() {
		s.logger.Warn("Cancel: class id=%d cannot be cancelled, status=%s", classID, session.Status)
		return ErrCannotCancel
	}

	if err := s.classRepo.Cancel(ctx, classID, req.CancellationReason); err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("Cancel: repository error for class id=%d: %v", classID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.invalidateDay(ctx, session, "Cancel")

	s.logger.Info("Cancel: successfully cancelled class id=%d", classID)
	return nil
}

// Unenroll отменяет запись участника на занятие
// Пользователь может отменить только свою запись. Выполняется в
// сериализуемой транзакции: освобождение места может вернуть
// заполненное занятие в статус OPEN
func (s *Service) Unenroll(ctx context.Context, enrollmentID int64, userID int64) error {
	s.logger.Info("Unenroll: withdrawing enrollment id=%d by user=%d", enrollmentID, userID)

	enrollment, err := s.classRepo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, classRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("Unenroll: enrollment id=%d not found", enrollmentID)
			return ErrEnrollmentNotFound
		}
		s.logger.Error("Unenroll: repository error for enrollment id=%d: %v", enrollmentID, err)
		return fmt.Errorf("%w: Unenroll - repository error: %v", ErrInternal, err)
	}

	if enrollment.UserID != userID {
		s.logger.Warn("Unenroll: access denied for user=%d to enrollment id=%d", userID, enrollmentID)
		return ErrAccessDenied
	}

	if !enrollment.IsActive() {
		s.logger.Warn("Unenroll: enrollment id=%d is not active", enrollmentID)
		return ErrNotEnrolled
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.classRepo.Withdraw(txCtx, enrollmentID)
	})
	if err != nil {
		if errors.Is(err, classRepo.ErrEnrollmentNotFound) {
			return ErrEnrollmentNotFound
		}
		s.logger.Error("Unenroll: failed to withdraw enrollment id=%d: %v", enrollmentID, err)
		return fmt.Errorf("%w: Unenroll - repository error: %v", ErrInternal, err)
	}

	session, err := s.classRepo.GetByID(ctx, enrollment.ClassID)
	if err == nil {
		s.invalidateDay(ctx, session, "Unenroll")
	}

	s.logger.Info("Unenroll: successfully withdrew enrollment id=%d", enrollmentID)
	return nil
}

// getClass получает занятие с маппингом ошибок репозитория
func (s *Service) getClass(ctx context.Context, id int64, op string) (*domain.ClassSession, error) {
	session, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("%s: class id=%d not found", op, id)
			return nil, ErrClassNotFound
		}
		s.logger.Error("%s: repository error for class id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return session, nil
}

// invalidateDay инвалидирует кэш расписания на день занятия
// Ошибка инвалидации не фатальна: кэш истечет по TTL
func (s *Service) invalidateDay(ctx context.Context, session *domain.ClassSession, op string) {
	if err := s.scheduleCache.InvalidateDay(ctx, session.CourtID, session.StartTime); err != nil {
		s.logger.Warn("%s: failed to invalidate schedule cache for court=%d: %v", op, session.CourtID, err)
	}
}

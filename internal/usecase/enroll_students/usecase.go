package enroll_students

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	classRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/class"
	"github.com/m04kA/PCM-SchedulingService/pkg/ptr"
)

// Причины отказа для отдельных кандидатов
const (
	reasonClassFull       = "занятие заполнено"
	reasonAlreadyEnrolled = "участник уже записан на это занятие"
	reasonUnknown         = "неизвестная ошибка"
)

// UseCase use case для пакетной записи участников на занятие
type UseCase struct {
	classRepo     ClassRepository
	scheduleCache ScheduleCache
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	scheduleCache ScheduleCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:     classRepo,
		scheduleCache: scheduleCache,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case пакетной записи
//
// Семантика пакета:
//   - предварительная проверка вместимости: если свободных мест меньше,
//     чем кандидатов, пакет отклоняется целиком без единой попытки записи;
//   - после успешной проверки кандидаты записываются последовательно,
//     каждая попытка в собственной сериализуемой транзакции;
//   - неуспех одного кандидата не откатывает остальных - уже выполненные
//     записи сохраняются, итог отражается в сводке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnrollStudents: class=%d, candidates=%d", req.ClassID, len(req.Candidates))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EnrollStudents: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятие и проверяем его состояние
	session, err := uc.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("EnrollStudents: class id=%d not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("EnrollStudents: failed to get class id=%d: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	if session.Status != domain.ClassStatusOpen && session.Status != domain.ClassStatusFull {
		uc.logger.Warn("EnrollStudents: class id=%d is not open, status=%s", req.ClassID, session.Status)
		return nil, ErrClassNotOpen
	}

	// 3. Предварительная проверка вместимости пакета
	// Недостаток мест отклоняет пакет целиком: ни одной попытки записи
	remaining := session.RemainingSpots()
	if len(req.Candidates) > remaining {
		shortfall := len(req.Candidates) - remaining
		uc.logger.Warn("EnrollStudents: capacity shortfall for class=%d: candidates=%d, remaining=%d, shortfall=%d",
			req.ClassID, len(req.Candidates), remaining, shortfall)
		return nil, fmt.Errorf("%w: %d candidates for %d remaining spots (shortfall %d)",
			ErrCapacityShortfall, len(req.Candidates), remaining, shortfall)
	}

	// 4. Последовательные независимые попытки записи
	results := make([]EnrollmentResult, 0, len(req.Candidates))
	succeeded := 0

	for _, candidate := range req.Candidates {
		result := uc.enrollOne(ctx, req.ClassID, candidate)
		if result.Success {
			succeeded++
		}
		results = append(results, result)
	}

	// 5. Инвалидируем кэш расписания, если состав занятия изменился
	// Ошибка инвалидации не фатальна: кэш истечет по TTL
	if succeeded > 0 {
		if err := uc.scheduleCache.InvalidateDay(ctx, session.CourtID, session.StartTime); err != nil {
			uc.logger.Warn("EnrollStudents: failed to invalidate schedule cache: %v", err)
		}
	}

	summary := summarize(succeeded, len(req.Candidates))
	uc.logger.Info("EnrollStudents: class=%d, summary=%s (%d/%d succeeded)",
		req.ClassID, summary, succeeded, len(req.Candidates))

	return &Response{
		Summary: summary,
		Results: results,
	}, nil
}

// enrollOne выполняет одну попытку записи в собственной сериализуемой транзакции
func (uc *UseCase) enrollOne(ctx context.Context, classID int64, candidate Candidate) EnrollmentResult {
	var enrollment *domain.Enrollment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.classRepo.Enroll(txCtx, classID, candidate.UserID, candidate.UserName)
		if err != nil {
			return err
		}
		enrollment = created
		return nil
	})

	if err != nil {
		uc.logger.Warn("EnrollStudents: enrollment failed for class=%d, user=%d: %v",
			classID, candidate.UserID, err)
		return EnrollmentResult{
			UserID:  candidate.UserID,
			Success: false,
			Reason:  ptr.Ptr(failureReason(err)),
		}
	}

	uc.logger.Info("EnrollStudents: enrolled user=%d into class=%d, enrollment id=%d",
		candidate.UserID, classID, enrollment.ID)

	return EnrollmentResult{
		UserID:       candidate.UserID,
		Success:      true,
		EnrollmentID: ptr.Ptr(enrollment.ID),
	}
}

// failureReason преобразует ошибку записи в причину отказа для ответа
func failureReason(err error) string {
	switch {
	case errors.Is(err, classRepo.ErrClassFull):
		return reasonClassFull
	case errors.Is(err, classRepo.ErrAlreadyEnrolled):
		return reasonAlreadyEnrolled
	default:
		return reasonUnknown
	}
}

// summarize определяет сводный итог пакета
func summarize(succeeded, total int) string {
	switch succeeded {
	case total:
		return SummaryAllSucceeded
	case 0:
		return SummaryAllFailed
	default:
		return SummaryPartial
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClassID <= 0 {
		return fmt.Errorf("%w: classID must be positive", ErrInvalidInput)
	}

	if len(req.Candidates) == 0 {
		return fmt.Errorf("%w: candidates list is empty", ErrInvalidInput)
	}

	for _, candidate := range req.Candidates {
		if candidate.UserID <= 0 {
			return fmt.Errorf("%w: candidate userID must be positive", ErrInvalidInput)
		}
		if candidate.UserName == "" {
			return fmt.Errorf("%w: candidate userName is required", ErrInvalidInput)
		}
	}

	return nil
}

package memberships

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	membershipRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/membership"
	"github.com/m04kA/PCM-SchedulingService/internal/integrations/paymentservice"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
	"github.com/m04kA/PCM-SchedulingService/pkg/ptr"
)

// Service сервис жизненного цикла клубных абонементов
//
// Допустимые переходы статуса:
//
//	ACTIVE    -> SUSPENDED, CANCELLED
//	SUSPENDED -> ACTIVE, CANCELLED
//	CANCELLED, EXPIRED - терминальные
//
// Продление (Renew) и перенос даты списания не являются переходами
// статуса и разрешены для любого нетерминального абонемента
type Service struct {
	membershipRepo MembershipRepository
	paymentClient  PaymentServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(
	membershipRepo MembershipRepository,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		paymentClient:  paymentClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Create оформляет новый абонемент в статусе ACTIVE
// Месячная плата фиксируется снимком на момент вступления
func (s *Service) Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Create: creating membership for club=%d, user=%d", req.ClubID, req.UserID)

	if req.ClubID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: clubId and userId must be positive", ErrInvalidInput)
	}
	if req.MonthlyFeeCents < 0 {
		return nil, fmt.Errorf("%w: monthlyFeeCents must not be negative", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	membership := &domain.ClubMembership{
		ClubID:          req.ClubID,
		UserID:          req.UserID,
		Status:          domain.MembershipStatusActive,
		PaymentStatus:   domain.MembershipPaymentUpToDate,
		MonthlyFeeCents: req.MonthlyFeeCents,
		StartDate:       now,
		NextBillingDate: ptr.Ptr(now.AddDate(0, 1, 0)),
	}

	created, err := s.membershipRepo.Create(ctx, membership)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrDuplicateMembership) {
			s.logger.Warn("Create: membership already exists for club=%d, user=%d", req.ClubID, req.UserID)
			return nil, ErrDuplicateMembership
		}
		s.logger.Error("Create: repository error for club=%d, user=%d: %v", req.ClubID, req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created membership id=%d", created.ID)
	return models.FromDomainMembership(created), nil
}

// GetByID получает абонемент по ID
// Пользователь может видеть только свой абонемент
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.MembershipResponse, error) {
	s.logger.Info("GetByID: fetching membership id=%d for user=%d", id, userID)

	membership, err := s.getMembership(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if membership.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to membership id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainMembership(membership), nil
}

// GetUserMemberships получает абонементы пользователя
func (s *Service) GetUserMemberships(ctx context.Context, userID int64) (*models.MembershipListResponse, error) {
	s.logger.Info("GetUserMemberships: fetching memberships for user=%d", userID)

	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserMemberships: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserMemberships - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMembershipList(memberships), nil
}

// Suspend приостанавливает абонемент (заморозка)
// Разрешено только из статуса ACTIVE
func (s *Service) Suspend(ctx context.Context, id int64, userID int64) error {
	return s.transition(ctx, id, userID, "Suspend", domain.MembershipStatusSuspended,
		func(m *domain.ClubMembership) bool { return m.CanSuspend() })
}

// Resume возобновляет приостановленный абонемент
// Разрешено только из статуса SUSPENDED; повторное возобновление недопустимо
func (s *Service) Resume(ctx context.Context, id int64, userID int64) error {
	return s.transition(ctx, id, userID, "Resume", domain.MembershipStatusActive,
		func(m *domain.ClubMembership) bool { return m.CanResume() })
}

// CancelMembership отменяет абонемент
// Разрешено из любого нетерминального статуса; отмена необратима
func (s *Service) CancelMembership(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("CancelMembership: cancelling membership id=%d by user=%d", id, userID)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		membership, err := s.getMembership(txCtx, id, "CancelMembership")
		if err != nil {
			return err
		}

		if membership.UserID != userID {
			s.logger.Warn("CancelMembership: access denied for user=%d to membership id=%d", userID, id)
			return ErrAccessDenied
		}

		if !membership.CanCancel() {
			s.logger.Warn("CancelMembership: illegal transition for membership id=%d, status=%s", id, membership.Status)
			return ErrIllegalTransition
		}

		if err := s.membershipRepo.Cancel(txCtx, id); err != nil {
			s.logger.Error("CancelMembership: repository error for membership id=%d: %v", id, err)
			return fmt.Errorf("%w: CancelMembership - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("CancelMembership: successfully cancelled membership id=%d", id)
		return nil
	})
}

// Renew продлевает абонемент: списывает месячную плату и сдвигает дату
// следующего списания. Продление не зависит от статуса SUSPENDED -
// заморозка не прерывает биллинг. Неуспешное списание переводит
// оплату в PAST_DUE, статус жизненного цикла при этом не меняется
func (s *Service) Renew(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Renew: renewing membership id=%d by user=%d", id, userID)

	membership, err := s.getMembership(ctx, id, "Renew")
	if err != nil {
		return err
	}

	if membership.UserID != userID {
		s.logger.Warn("Renew: access denied for user=%d to membership id=%d", userID, id)
		return ErrAccessDenied
	}

	if !membership.CanRenew() {
		s.logger.Warn("Renew: illegal renewal for membership id=%d, status=%s", id, membership.Status)
		return ErrIllegalTransition
	}

	_, err = s.paymentClient.Charge(ctx, paymentservice.ChargeRequest{
		MembershipID: membership.ID,
		UserID:       membership.UserID,
		AmountCents:  membership.MonthlyFeeCents,
		Description:  fmt.Sprintf("Membership renewal, club %d", membership.ClubID),
	})
	if err != nil {
		// Неуспешное списание фиксируется как просрочка, абонемент не блокируется
		s.logger.Warn("Renew: charge failed for membership id=%d: %v", id, err)

		if updateErr := s.membershipRepo.UpdateBilling(ctx, id, domain.MembershipPaymentPastDue, nil); updateErr != nil {
			s.logger.Error("Renew: failed to mark membership id=%d as past due: %v", id, updateErr)
			return fmt.Errorf("%w: Renew - repository error: %v", ErrInternal, updateErr)
		}

		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	nextBillingDate := s.nextBillingDateAfterRenewal(membership)
	if err := s.membershipRepo.UpdateBilling(ctx, id, domain.MembershipPaymentUpToDate, &nextBillingDate); err != nil {
		s.logger.Error("Renew: failed to update billing for membership id=%d: %v", id, err)
		return fmt.Errorf("%w: Renew - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Renew: successfully renewed membership id=%d, next billing %s",
		id, nextBillingDate.Format(domain.DateFormat))
	return nil
}

// UpdateBillingDate переносит дату следующего списания
// Разрешено для нетерминальных абонементов; дата в прошлом недопустима
func (s *Service) UpdateBillingDate(ctx context.Context, id int64, userID int64, req *models.UpdateBillingDateRequest) error {
	s.logger.Info("UpdateBillingDate: membership id=%d, new date=%s",
		id, req.NextBillingDate.Format(domain.DateFormat))

	if req.NextBillingDate.IsZero() {
		return fmt.Errorf("%w: nextBillingDate is required", ErrInvalidInput)
	}

	membership, err := s.getMembership(ctx, id, "UpdateBillingDate")
	if err != nil {
		return err
	}

	if membership.UserID != userID {
		s.logger.Warn("UpdateBillingDate: access denied for user=%d to membership id=%d", userID, id)
		return ErrAccessDenied
	}

	if !membership.IsActive() {
		s.logger.Warn("UpdateBillingDate: membership id=%d is terminal, status=%s", id, membership.Status)
		return ErrIllegalTransition
	}

	// Сравниваем по дням: перенос на сегодня допустим
	now := s.timeProvider.Now()
	if dateOnly(req.NextBillingDate).Before(dateOnly(now)) {
		s.logger.Warn("UpdateBillingDate: date %s is in the past for membership id=%d",
			req.NextBillingDate.Format(domain.DateFormat), id)
		return ErrBillingDateInPast
	}

	if err := s.membershipRepo.UpdateNextBillingDate(ctx, id, req.NextBillingDate); err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		s.logger.Error("UpdateBillingDate: repository error for membership id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateBillingDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBillingDate: successfully updated membership id=%d", id)
	return nil
}

// transition выполняет переход статуса с проверкой допустимости
// Проверка и обновление выполняются в сериализуемой транзакции:
// строка абонемента блокируется через FOR UPDATE
func (s *Service) transition(
	ctx context.Context,
	id int64,
	userID int64,
	op string,
	target domain.MembershipStatus,
	allowed func(*domain.ClubMembership) bool,
) error {
	s.logger.Info("%s: membership id=%d by user=%d", op, id, userID)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		membership, err := s.getMembership(txCtx, id, op)
		if err != nil {
			return err
		}

		if membership.UserID != userID {
			s.logger.Warn("%s: access denied for user=%d to membership id=%d", op, userID, id)
			return ErrAccessDenied
		}

		if !allowed(membership) {
			s.logger.Warn("%s: illegal transition for membership id=%d, status=%s -> %s",
				op, id, membership.Status, target)
			return ErrIllegalTransition
		}

		if err := s.membershipRepo.UpdateStatus(txCtx, id, target); err != nil {
			s.logger.Error("%s: repository error for membership id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		s.logger.Info("%s: membership id=%d transitioned to %s", op, id, target)
		return nil
	})
}

// nextBillingDateAfterRenewal вычисляет дату следующего списания
// Сдвигает текущую дату списания на месяц; если она не установлена,
// отсчитывает месяц от текущего момента
func (s *Service) nextBillingDateAfterRenewal(membership *domain.ClubMembership) time.Time {
	if membership.NextBillingDate != nil && !membership.NextBillingDate.IsZero() {
		return membership.NextBillingDate.AddDate(0, 1, 0)
	}
	return s.timeProvider.Now().AddDate(0, 1, 0)
}

// getMembership получает абонемент с маппингом ошибок репозитория
func (s *Service) getMembership(ctx context.Context, id int64, op string) (*domain.ClubMembership, error) {
	membership, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			s.logger.Warn("%s: membership id=%d not found", op, id)
			return nil, ErrMembershipNotFound
		}
		s.logger.Error("%s: repository error for membership id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return membership, nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

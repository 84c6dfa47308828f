package memberships

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/internal/integrations/paymentservice"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
	"github.com/m04kA/PCM-SchedulingService/pkg/ptr"
)

type fakeMembershipRepo struct {
	membership *domain.ClubMembership

	updatedStatus        *domain.MembershipStatus
	cancelled            bool
	billingPayment       *domain.MembershipPaymentStatus
	billingNextDate      *time.Time
	updatedNextBillingAt *time.Time
}

func (f *fakeMembershipRepo) Create(_ context.Context, membership *domain.ClubMembership) (*domain.ClubMembership, error) {
	created := *membership
	created.ID = 500
	return &created, nil
}

func (f *fakeMembershipRepo) GetByID(_ context.Context, _ int64) (*domain.ClubMembership, error) {
	return f.membership, nil
}

func (f *fakeMembershipRepo) ListByUser(_ context.Context, _ int64) ([]*domain.ClubMembership, error) {
	return []*domain.ClubMembership{f.membership}, nil
}

func (f *fakeMembershipRepo) UpdateStatus(_ context.Context, _ int64, status domain.MembershipStatus) error {
	f.updatedStatus = &status
	f.membership.Status = status
	return nil
}

func (f *fakeMembershipRepo) Cancel(_ context.Context, _ int64) error {
	f.cancelled = true
	f.membership.Status = domain.MembershipStatusCancelled
	return nil
}

func (f *fakeMembershipRepo) UpdateBilling(_ context.Context, _ int64, paymentStatus domain.MembershipPaymentStatus, nextBillingDate *time.Time) error {
	f.billingPayment = &paymentStatus
	f.billingNextDate = nextBillingDate
	return nil
}

func (f *fakeMembershipRepo) UpdateNextBillingDate(_ context.Context, _ int64, nextBillingDate time.Time) error {
	f.updatedNextBillingAt = &nextBillingDate
	return nil
}

type fakePaymentClient struct {
	err     error
	charges []paymentservice.ChargeRequest
}

func (f *fakePaymentClient) Charge(_ context.Context, request paymentservice.ChargeRequest) (*paymentservice.ChargeResponse, error) {
	f.charges = append(f.charges, request)
	if f.err != nil {
		return nil, f.err
	}
	return &paymentservice.ChargeResponse{TransactionID: "tx-1", Status: "CHARGED"}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	svc      *Service
	repo     *fakeMembershipRepo
	payments *fakePaymentClient
}

func newFixture(status domain.MembershipStatus) *serviceFixture {
	f := &serviceFixture{
		repo: &fakeMembershipRepo{
			membership: &domain.ClubMembership{
				ID:              500,
				ClubID:          1,
				UserID:          7,
				Status:          status,
				PaymentStatus:   domain.MembershipPaymentUpToDate,
				MonthlyFeeCents: 4900,
				StartDate:       testNow.AddDate(0, -2, 0),
				NextBillingDate: ptr.Ptr(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)),
			},
		},
		payments: &fakePaymentClient{},
	}

	f.svc = NewService(f.repo, f.payments, &fakeTxManager{}, noopLogger{})
	f.svc.timeProvider = &fixedTimeProvider{now: testNow}
	return f
}

func TestCreate(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)

	resp, err := f.svc.Create(context.Background(), &models.CreateMembershipRequest{
		ClubID:          1,
		UserID:          7,
		MonthlyFeeCents: 4900,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, string(domain.MembershipStatusActive), resp.Status)
	assert.Equal(t, string(domain.MembershipPaymentUpToDate), resp.PaymentStatus)
}

func TestSuspendAndResume(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)
	ctx := context.Background()

	require.NoError(t, f.svc.Suspend(ctx, 500, 7))
	assert.Equal(t, domain.MembershipStatusSuspended, f.repo.membership.Status)

	require.NoError(t, f.svc.Resume(ctx, 500, 7))
	assert.Equal(t, domain.MembershipStatusActive, f.repo.membership.Status)
}

func TestTransition_Illegal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status domain.MembershipStatus
		call   func(s *Service) error
	}{
		{"suspend suspended", domain.MembershipStatusSuspended, func(s *Service) error {
			return s.Suspend(ctx, 500, 7)
		}},
		{"resume active", domain.MembershipStatusActive, func(s *Service) error {
			return s.Resume(ctx, 500, 7)
		}},
		{"suspend cancelled", domain.MembershipStatusCancelled, func(s *Service) error {
			return s.Suspend(ctx, 500, 7)
		}},
		{"cancel expired", domain.MembershipStatusExpired, func(s *Service) error {
			return s.CancelMembership(ctx, 500, 7)
		}},
		{"renew cancelled", domain.MembershipStatusCancelled, func(s *Service) error {
			return s.Renew(ctx, 500, 7)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status)
			assert.ErrorIs(t, tt.call(f.svc), ErrIllegalTransition)
		})
	}
}

func TestTransition_AccessDenied(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)

	err := f.svc.Suspend(context.Background(), 500, 999)

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, f.repo.updatedStatus)
}

func TestCancelMembership(t *testing.T) {
	f := newFixture(domain.MembershipStatusSuspended)

	require.NoError(t, f.svc.CancelMembership(context.Background(), 500, 7))
	assert.True(t, f.repo.cancelled)
}

func TestRenew_Success(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)

	require.NoError(t, f.svc.Renew(context.Background(), 500, 7))

	require.Len(t, f.payments.charges, 1)
	assert.Equal(t, 4900, f.payments.charges[0].AmountCents)

	require.NotNil(t, f.repo.billingPayment)
	assert.Equal(t, domain.MembershipPaymentUpToDate, *f.repo.billingPayment)

	// Дата списания сдвигается на месяц от прежней даты, не от "сейчас"
	require.NotNil(t, f.repo.billingNextDate)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), *f.repo.billingNextDate)
}

// Заморозка не прерывает биллинг: приостановленный абонемент продлевается
func TestRenew_WhileSuspended(t *testing.T) {
	f := newFixture(domain.MembershipStatusSuspended)

	require.NoError(t, f.svc.Renew(context.Background(), 500, 7))

	assert.Len(t, f.payments.charges, 1)
	assert.Equal(t, domain.MembershipStatusSuspended, f.repo.membership.Status)
}

func TestRenew_PaymentFailure(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)
	f.payments.err = paymentservice.ErrPaymentDeclined

	err := f.svc.Renew(context.Background(), 500, 7)

	require.ErrorIs(t, err, ErrPaymentFailed)

	// Просрочка фиксируется, дата списания не сдвигается
	require.NotNil(t, f.repo.billingPayment)
	assert.Equal(t, domain.MembershipPaymentPastDue, *f.repo.billingPayment)
	assert.Nil(t, f.repo.billingNextDate)

	// Статус жизненного цикла не меняется
	assert.Equal(t, domain.MembershipStatusActive, f.repo.membership.Status)
}

func TestUpdateBillingDate(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)
	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	err := f.svc.UpdateBillingDate(context.Background(), 500, 7, &models.UpdateBillingDateRequest{
		NextBillingDate: newDate,
	})

	require.NoError(t, err)
	require.NotNil(t, f.repo.updatedNextBillingAt)
	assert.Equal(t, newDate, *f.repo.updatedNextBillingAt)
}

func TestUpdateBillingDate_TodayAllowed(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)

	// Время внутри сегодняшнего дня раньше "сейчас" - сравнение идёт по дням
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err := f.svc.UpdateBillingDate(context.Background(), 500, 7, &models.UpdateBillingDateRequest{
		NextBillingDate: today,
	})

	require.NoError(t, err)
}

func TestUpdateBillingDate_PastRejected(t *testing.T) {
	f := newFixture(domain.MembershipStatusActive)

	err := f.svc.UpdateBillingDate(context.Background(), 500, 7, &models.UpdateBillingDateRequest{
		NextBillingDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrBillingDateInPast)
	assert.Nil(t, f.repo.updatedNextBillingAt)
}

func TestUpdateBillingDate_TerminalRejected(t *testing.T) {
	f := newFixture(domain.MembershipStatusCancelled)

	err := f.svc.UpdateBillingDate(context.Background(), 500, 7, &models.UpdateBillingDateRequest{
		NextBillingDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrIllegalTransition)
}

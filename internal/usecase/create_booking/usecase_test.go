package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	courtRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/court"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 1001
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) ListByCourtAndDate(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeClassRepo struct {
	existing []*domain.ClassSession
}

func (f *fakeClassRepo) ListByCourtAndDate(_ context.Context, _ int64, _ *time.Time, _ bool) ([]*domain.ClassSession, error) {
	return f.existing, nil
}

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, f.err
}

type fakeCache struct {
	invalidations int
}

func (f *fakeCache) InvalidateDay(_ context.Context, _ int64, _ time.Time) error {
	f.invalidations++
	return nil
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

type useCaseFixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	classes  *fakeClassRepo
	courts   *fakeCourtRepo
	cache    *fakeCache
}

func newFixture(now time.Time) *useCaseFixture {
	f := &useCaseFixture{
		bookings: &fakeBookingRepo{},
		classes:  &fakeClassRepo{},
		courts: &fakeCourtRepo{
			court: &domain.Court{ID: 2, Name: "Pista Central", BasePriceCents: 2500, IsActive: true},
		},
		cache: &fakeCache{},
	}

	f.uc = NewUseCase(f.bookings, f.classes, f.courts, f.cache, &fakeTxManager{}, noopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:   7,
		UserName: "Ana",
		CourtID:  2,
		Start:    slot(1, 10),
		End:      slot(1, 12),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(slot(1, 8))

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusUnpaid), resp.PaymentStatus)

	// Цена фиксируется снимком: базовая ставка за час * длительность
	assert.Equal(t, 5000, resp.PriceSnapshotCents)

	assert.Equal(t, 1, f.cache.invalidations)
}

func TestExecute_SlotConflictWithBooking(t *testing.T) {
	f := newFixture(slot(1, 8))
	f.bookings.existing = []*domain.Booking{
		{StartTime: slot(1, 11), EndTime: slot(1, 13), Status: domain.BookingStatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.bookings.created)
	assert.Equal(t, 0, f.cache.invalidations)
}

func TestExecute_SlotConflictWithClass(t *testing.T) {
	f := newFixture(slot(1, 8))
	f.classes.existing = []*domain.ClassSession{
		{StartTime: slot(1, 10), EndTime: slot(1, 11), Status: domain.ClassStatusOpen},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_AdjacentIntervalsDoNotConflict(t *testing.T) {
	f := newFixture(slot(1, 8))
	f.bookings.existing = []*domain.Booking{
		{StartTime: slot(1, 12), EndTime: slot(1, 13), Status: domain.BookingStatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, f.bookings.created)
}

func TestExecute_CourtNotFound(t *testing.T) {
	f := newFixture(slot(1, 8))
	f.courts.court = nil
	f.courts.err = courtRepo.ErrCourtNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_CourtInactive(t *testing.T) {
	f := newFixture(slot(1, 8))
	f.courts.court.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrCourtInactive)
}

func TestExecute_StartInPast(t *testing.T) {
	f := newFixture(slot(1, 11))

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateInPast)
}

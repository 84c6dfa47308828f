package enroll_students

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	classRepo "github.com/m04kA/PCM-SchedulingService/internal/infra/storage/class"
)

type fakeClassRepo struct {
	session *domain.ClassSession

	enrollCalls  int
	enrollErrs   map[int64]error // userID -> ошибка записи
	nextEnrollID int64
}

func (f *fakeClassRepo) GetByID(_ context.Context, _ int64) (*domain.ClassSession, error) {
	return f.session, nil
}

func (f *fakeClassRepo) Enroll(_ context.Context, classID, userID int64, userName string) (*domain.Enrollment, error) {
	f.enrollCalls++

	if err, ok := f.enrollErrs[userID]; ok {
		return nil, err
	}

	f.nextEnrollID++
	return &domain.Enrollment{
		ID:       f.nextEnrollID,
		ClassID:  classID,
		UserID:   userID,
		UserName: userName,
		Status:   domain.EnrollmentStatusConfirmed,
	}, nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestSession(capacity, enrolled int) *domain.ClassSession {
	return &domain.ClassSession{
		ID:            1,
		CourtID:       3,
		Title:         "Clase de padel",
		StartTime:     time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC),
		MaxCapacity:   capacity,
		EnrolledCount: enrolled,
		Status:        domain.ClassStatusOpen,
	}
}

func newTestUseCase(repo *fakeClassRepo, cache *fakeCache) *UseCase {
	return NewUseCase(repo, cache, &fakeTxManager{}, noopLogger{})
}

func TestExecute_AllSucceeded(t *testing.T) {
	repo := &fakeClassRepo{session: newTestSession(10, 5)}
	cache := &fakeCache{}
	uc := newTestUseCase(repo, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID: 1,
		Candidates: []Candidate{
			{UserID: 100, UserName: "Ana"},
			{UserID: 101, UserName: "Luis"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, SummaryAllSucceeded, resp.Summary)
	require.Len(t, resp.Results, 2)

	for _, result := range resp.Results {
		assert.True(t, result.Success)
		assert.NotNil(t, result.EnrollmentID)
		assert.Nil(t, result.Reason)
	}

	assert.Equal(t, 2, repo.enrollCalls)
	assert.Equal(t, 1, cache.invalidations)
}

// Недостаток мест отклоняет пакет целиком: ни одной попытки записи
func TestExecute_CapacityShortfallRejectsWholeBatch(t *testing.T) {
	repo := &fakeClassRepo{session: newTestSession(10, 8)}
	cache := &fakeCache{}
	uc := newTestUseCase(repo, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID: 1,
		Candidates: []Candidate{
			{UserID: 100, UserName: "Ana"},
			{UserID: 101, UserName: "Luis"},
			{UserID: 102, UserName: "Marta"},
		},
	})

	require.ErrorIs(t, err, ErrCapacityShortfall)
	assert.Nil(t, resp)
	assert.Equal(t, 0, repo.enrollCalls)
	assert.Equal(t, 0, cache.invalidations)
}

// Неуспех одного кандидата не откатывает остальных
func TestExecute_PartialOnDuplicateCandidate(t *testing.T) {
	repo := &fakeClassRepo{
		session: newTestSession(10, 5),
		enrollErrs: map[int64]error{
			101: classRepo.ErrAlreadyEnrolled,
		},
	}
	cache := &fakeCache{}
	uc := newTestUseCase(repo, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID: 1,
		Candidates: []Candidate{
			{UserID: 100, UserName: "Ana"},
			{UserID: 101, UserName: "Luis"},
			{UserID: 102, UserName: "Marta"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, SummaryPartial, resp.Summary)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Success)
	assert.True(t, resp.Results[2].Success)

	failed := resp.Results[1]
	assert.False(t, failed.Success)
	assert.Nil(t, failed.EnrollmentID)
	require.NotNil(t, failed.Reason)
	assert.Equal(t, reasonAlreadyEnrolled, *failed.Reason)

	// Успешные записи сохраняются, кэш инвалидируется
	assert.Equal(t, 3, repo.enrollCalls)
	assert.Equal(t, 1, cache.invalidations)
}

func TestExecute_AllFailed(t *testing.T) {
	repo := &fakeClassRepo{
		session: newTestSession(10, 9),
		enrollErrs: map[int64]error{
			100: classRepo.ErrClassFull,
		},
	}
	cache := &fakeCache{}
	uc := newTestUseCase(repo, cache)

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID:    1,
		Candidates: []Candidate{{UserID: 100, UserName: "Ana"}},
	})

	require.NoError(t, err)
	assert.Equal(t, SummaryAllFailed, resp.Summary)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].Reason)
	assert.Equal(t, reasonClassFull, *resp.Results[0].Reason)

	assert.Equal(t, 0, cache.invalidations)
}

func TestExecute_ClassNotOpen(t *testing.T) {
	session := newTestSession(10, 0)
	session.Status = domain.ClassStatusCancelled

	repo := &fakeClassRepo{session: session}
	uc := newTestUseCase(repo, &fakeCache{})

	_, err := uc.Execute(context.Background(), &Request{
		ClassID:    1,
		Candidates: []Candidate{{UserID: 100, UserName: "Ana"}},
	})

	require.ErrorIs(t, err, ErrClassNotOpen)
	assert.Equal(t, 0, repo.enrollCalls)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeClassRepo{session: newTestSession(10, 0)}, &fakeCache{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty candidates", &Request{ClassID: 1}},
		{"non-positive class id", &Request{ClassID: 0, Candidates: []Candidate{{UserID: 1, UserName: "Ana"}}}},
		{"candidate without name", &Request{ClassID: 1, Candidates: []Candidate{{UserID: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

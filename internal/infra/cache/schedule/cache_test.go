package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, time.Minute), mr
}

func testDay() *DayOccupancies {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	return &DayOccupancies{
		Bookings: []*domain.Booking{
			{
				ID:        1,
				CourtID:   7,
				UserID:    42,
				UserName:  "Ana García",
				StartTime: start,
				EndTime:   start.Add(2 * time.Hour),
				Status:    domain.BookingStatusConfirmed,
			},
		},
		Classes: []*domain.ClassSession{
			{
				ID:          3,
				CourtID:     7,
				Title:       "Падел для начинающих",
				StartTime:   start.Add(4 * time.Hour),
				EndTime:     start.Add(5 * time.Hour),
				MaxCapacity: 8,
				Status:      domain.ClassStatusOpen,
			},
		},
	}
}

func TestCache_SetAndGetDay(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetDay(ctx, 7, date, testDay()))

	got, err := cache.GetDay(ctx, 7, date)
	require.NoError(t, err)
	require.Len(t, got.Bookings, 1)
	require.Len(t, got.Classes, 1)
	assert.Equal(t, int64(1), got.Bookings[0].ID)
	assert.Equal(t, "Ana García", got.Bookings[0].UserName)
	assert.Equal(t, domain.ClassStatusOpen, got.Classes[0].Status)
}

func TestCache_GetDay_Miss(t *testing.T) {
	cache, _ := newTestCache(t)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := cache.GetDay(context.Background(), 7, date)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_GetDay_DifferentCourtIsolated(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetDay(ctx, 7, date, testDay()))

	_, err := cache.GetDay(ctx, 8, date)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_InvalidateDay(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetDay(ctx, 7, date, testDay()))
	require.NoError(t, cache.InvalidateDay(ctx, 7, date))

	_, err := cache.GetDay(ctx, 7, date)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_TTLExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.SetDay(ctx, 7, date, testDay()))

	mr.FastForward(2 * time.Minute)

	_, err := cache.GetDay(ctx, 7, date)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// DayOccupancies занятость корта за один день: бронирования и занятия,
// из которых собирается почасовая сетка расписания
type DayOccupancies struct {
	Bookings []*domain.Booking      `json:"bookings"`
	Classes  []*domain.ClassSession `json:"classes"`
}

// Cache кэш дневной занятости кортов поверх redis
// Ключ - пара (корт, дата); мутации занятости инвалидируют день целиком
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый экземпляр кэша расписания
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetDay получает занятость корта на дату из кэша
// При отсутствии ключа возвращает ErrCacheMiss
func (c *Cache) GetDay(ctx context.Context, courtID int64, date time.Time) (*DayOccupancies, error) {
	payload, err := c.client.Get(ctx, dayKey(courtID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDay: %v", ErrRedis, err)
	}

	var day DayOccupancies
	if err := json.Unmarshal(payload, &day); err != nil {
		return nil, fmt.Errorf("%w: GetDay: %v", ErrUnmarshal, err)
	}

	return &day, nil
}

// SetDay сохраняет занятость корта на дату с TTL кэша
func (c *Cache) SetDay(ctx context.Context, courtID int64, date time.Time, day *DayOccupancies) error {
	payload, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("%w: SetDay: %v", ErrMarshal, err)
	}

	if err := c.client.Set(ctx, dayKey(courtID, date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetDay: %v", ErrRedis, err)
	}

	return nil
}

// InvalidateDay удаляет занятость корта на дату из кэша
// Вызывается после любой мутации, затрагивающей этот день
func (c *Cache) InvalidateDay(ctx context.Context, courtID int64, date time.Time) error {
	if err := c.client.Del(ctx, dayKey(courtID, date)).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateDay: %v", ErrRedis, err)
	}

	return nil
}

func dayKey(courtID int64, date time.Time) string {
	return fmt.Sprintf("schedule:%d:%s", courtID, date.Format(domain.DateFormat))
}

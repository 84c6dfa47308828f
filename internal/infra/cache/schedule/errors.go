package schedule

import "errors"

var (
	// ErrCacheMiss возвращается, когда расписание дня отсутствует в кэше
	ErrCacheMiss = errors.New("schedule.cache: cache miss")

	// ErrMarshal возвращается при ошибке сериализации расписания
	ErrMarshal = errors.New("schedule.cache: failed to marshal payload")

	// ErrUnmarshal возвращается при ошибке десериализации расписания
	ErrUnmarshal = errors.New("schedule.cache: failed to unmarshal payload")

	// ErrRedis возвращается при ошибке обращения к redis
	ErrRedis = errors.New("schedule.cache: redis operation failed")
)

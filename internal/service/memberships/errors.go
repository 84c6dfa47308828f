package memberships

import "errors"

var (
	// ErrMembershipNotFound возвращается, когда абонемент не найден
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrDuplicateMembership возвращается при попытке повторного вступления в клуб
	ErrDuplicateMembership = errors.New("membership already exists for this user and club")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	// Допустимые переходы: ACTIVE -> SUSPENDED/CANCELLED, SUSPENDED -> ACTIVE/CANCELLED
	ErrIllegalTransition = errors.New("illegal membership status transition")

	// ErrPaymentFailed возвращается, когда списание при продлении не прошло
	// Абонемент при этом переводится в PAST_DUE, статус жизненного цикла не меняется
	ErrPaymentFailed = errors.New("membership renewal payment failed")

	// ErrBillingDateInPast возвращается при попытке установить дату списания в прошлом
	ErrBillingDateInPast = errors.New("next billing date must not be in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

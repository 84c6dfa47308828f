package classes

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("class not found")

	// ErrEnrollmentNotFound возвращается, когда запись на занятие не найдена
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда занятие не может быть отменено
	ErrCannotCancel = errors.New("class cannot be cancelled")

	// ErrNotEnrolled возвращается, когда запись уже неактивна
	ErrNotEnrolled = errors.New("enrollment is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

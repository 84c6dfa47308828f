package enroll_students

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("enroll_students: class not found")

	// ErrClassNotOpen возвращается, когда занятие отменено или завершено
	ErrClassNotOpen = errors.New("enroll_students: class is not open for enrollment")

	// ErrCapacityShortfall возвращается, когда свободных мест меньше, чем
	// кандидатов в пакете. Ни одна запись при этом не выполняется
	ErrCapacityShortfall = errors.New("enroll_students: not enough remaining spots for the batch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enroll_students: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("enroll_students: internal error")
)

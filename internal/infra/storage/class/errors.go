package class

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("class.repository: class not found")

	// ErrEnrollmentNotFound возвращается, когда запись на занятие не найдена
	ErrEnrollmentNotFound = errors.New("class.repository: enrollment not found")

	// ErrClassFull возвращается, когда вместимость занятия исчерпана
	ErrClassFull = errors.New("class.repository: class is at full capacity")

	// ErrAlreadyEnrolled возвращается при повторной записи участника на занятие
	ErrAlreadyEnrolled = errors.New("class.repository: user is already enrolled")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующей занятостью
	ErrSlotConflict = errors.New("class.repository: time range conflicts with existing occupancy")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("class.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("class.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("class.repository: failed to scan row")
)

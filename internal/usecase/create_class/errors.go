package create_class

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_class: court not found")

	// ErrCourtInactive возвращается, когда корт выведен из эксплуатации
	ErrCourtInactive = errors.New("create_class: court is not active")

	// ErrInvalidTimeRange возвращается, когда интервал некорректен
	ErrInvalidTimeRange = errors.New("create_class: invalid time range")

	// ErrNotHourAligned возвращается, когда границы интервала не выровнены по часам
	ErrNotHourAligned = errors.New("create_class: time range must be aligned to whole hours")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за рабочую сетку клуба
	ErrOutsideWorkingHours = errors.New("create_class: time range is outside working hours")

	// ErrDateInPast возвращается при попытке запланировать занятие в прошлом
	ErrDateInPast = errors.New("create_class: time range is in the past")

	// ErrInvalidCapacity возвращается при недопустимой вместимости занятия
	ErrInvalidCapacity = errors.New("create_class: invalid capacity")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной занятостью корта
	ErrSlotConflict = errors.New("create_class: time range conflicts with existing occupancy")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_class: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_class: internal error")
)

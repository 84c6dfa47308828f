package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive возвращается, когда корт выведен из эксплуатации
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrInvalidTimeRange возвращается, когда интервал некорректен
	// (конец не позже начала или интервал пересекает границу дня)
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrNotHourAligned возвращается, когда границы интервала не выровнены по часам
	ErrNotHourAligned = errors.New("create_booking: time range must be aligned to whole hours")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за рабочую сетку клуба
	ErrOutsideWorkingHours = errors.New("create_booking: time range is outside working hours")

	// ErrTooLong возвращается, когда длительность превышает максимально допустимую
	ErrTooLong = errors.New("create_booking: booking duration exceeds the maximum")

	// ErrDateInPast возвращается при попытке забронировать время в прошлом
	ErrDateInPast = errors.New("create_booking: time range is in the past")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной занятостью корта
	ErrSlotConflict = errors.New("create_booking: time range conflicts with existing occupancy")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

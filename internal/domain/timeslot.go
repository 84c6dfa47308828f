package domain

import "time"

// Часовая сетка расписания: 14 слотов с 09:00 до 23:00
// Слот с ключом (courtID, date, hour) покрывает интервал [hour:00, hour+1:00)
const (
	GridOpenHour  = 9  // Первый час сетки (09:00)
	GridCloseHour = 23 // Час закрытия; последний слот начинается в 22:00
	SlotsPerDay   = GridCloseHour - GridOpenHour
)

// SlotKey ключ ячейки часовой сетки
type SlotKey struct {
	CourtID int64
	Date    time.Time // Дата без времени
	Hour    int       // GridOpenHour <= Hour < GridCloseHour
}

// GridHours возвращает часы сетки по порядку: 9, 10, ..., 22
func GridHours() []int {
	hours := make([]int, 0, SlotsPerDay)
	for h := GridOpenHour; h < GridCloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsGridHour returns true если час попадает в сетку расписания
func IsGridHour(hour int) bool {
	return hour >= GridOpenHour && hour < GridCloseHour
}

// IsHourAligned returns true если время выровнено по границе часа
func IsHourAligned(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// CoversHour returns true если интервал [start, end) покрывает час сетки
// Занятость выбирается на конкретную дату, поэтому сравниваются только часы
func CoversHour(start, end time.Time, hour int) bool {
	return hour >= start.Hour() && hour < end.Hour()
}

// IsStartHour returns true если час является первым часом интервала
// Первый час рендерится полной карточкой, остальные - маркером продолжения
func IsStartHour(start time.Time, hour int) bool {
	return start.Hour() == hour
}

// HourSlot возвращает момент начала слота (date, hour) в локации даты
func HourSlot(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

package domain

import "time"

// BookingStatus статус бронирования корта
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// Booking представляет бронирование корта на интервал [StartTime, EndTime)
// Границы интервала выровнены по часовой сетке (см. timeslot.go)
type Booking struct {
	ID      int64
	CourtID int64
	UserID  int64

	StartTime time.Time
	EndTime   time.Time

	Status        BookingStatus
	PaymentStatus PaymentStatus

	// Denormalized data for history
	UserName           string
	PriceSnapshotCents int
	Notes              *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true если бронирование занимает корт
// Отменённые бронирования не участвуют в проверке пересечений
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// IsCancelled returns true если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanBeCancelled returns true если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CoversHour returns true если бронирование занимает указанный час сетки
func (b *Booking) CoversHour(hour int) bool {
	return CoversHour(b.StartTime, b.EndTime, hour)
}

// Overlaps returns true если интервал бронирования пересекается с [start, end)
// Граничные случаи (end == start) пересечением не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// CourtBookingsFilter фильтр для выборки бронирований корта
type CourtBookingsFilter struct {
	CourtID         int64      // Обязательный параметр
	Date            *time.Time // Конкретная дата (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отменённые бронирования
}

package domain

import "time"

// ClassStatus статус группового занятия
type ClassStatus string

const (
	ClassStatusOpen      ClassStatus = "OPEN"
	ClassStatusFull      ClassStatus = "FULL"
	ClassStatusCancelled ClassStatus = "CANCELLED"
	ClassStatusCompleted ClassStatus = "COMPLETED"
)

// ClassSession представляет групповое занятие на корте
// Занимает интервал [StartTime, EndTime) наравне с бронированиями:
// для одного корта активные бронирования и занятия не должны пересекаться
type ClassSession struct {
	ID             int64
	CourtID        int64
	Title          string
	InstructorName string

	StartTime time.Time
	EndTime   time.Time

	MaxCapacity int
	PriceCents  int
	Status      ClassStatus

	// Количество активных записей (вычисляется при чтении)
	EnrolledCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true если занятие занимает корт
func (c *ClassSession) IsActive() bool {
	return c.Status != ClassStatusCancelled
}

// IsFull returns true если свободных мест не осталось
func (c *ClassSession) IsFull() bool {
	return c.EnrolledCount >= c.MaxCapacity
}

// RemainingSpots возвращает количество свободных мест
func (c *ClassSession) RemainingSpots() int {
	remaining := c.MaxCapacity - c.EnrolledCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanBeCancelled returns true если занятие можно отменить
func (c *ClassSession) CanBeCancelled() bool {
	return c.Status == ClassStatusOpen || c.Status == ClassStatusFull
}

// CoversHour returns true если занятие занимает указанный час сетки
func (c *ClassSession) CoversHour(hour int) bool {
	return CoversHour(c.StartTime, c.EndTime, hour)
}

// Overlaps returns true если интервал занятия пересекается с [start, end)
func (c *ClassSession) Overlaps(start, end time.Time) bool {
	return c.StartTime.Before(end) && c.EndTime.After(start)
}

// EnrollmentStatus статус записи на занятие
type EnrollmentStatus string

const (
	EnrollmentStatusConfirmed EnrollmentStatus = "CONFIRMED"
	EnrollmentStatusWithdrawn EnrollmentStatus = "WITHDRAWN"
)

// Enrollment представляет запись участника на групповое занятие
// Участник может иметь не более одной активной записи на занятие
type Enrollment struct {
	ID         int64
	ClassID    int64
	UserID     int64
	UserName   string
	Status     EnrollmentStatus
	EnrolledAt time.Time
}

// IsActive returns true если запись занимает место в занятии
func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentStatusConfirmed
}

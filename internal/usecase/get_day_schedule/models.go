package get_day_schedule

import "time"

// CellKind тип содержимого ячейки часовой сетки
type CellKind string

const (
	CellFree    CellKind = "FREE"
	CellBooking CellKind = "BOOKING"
	CellClass   CellKind = "CLASS"
)

// Request модель запроса расписания корта на день
type Request struct {
	CourtID int64
	Date    time.Time
}

// Cell ячейка часовой сетки расписания
// Первый час занятости - стартовая ячейка с полной карточкой,
// остальные покрытые часы - маркер продолжения
type Cell struct {
	Hour    int
	Kind    CellKind
	IsStart bool

	// Производная подпись статуса (испанская локаль); пусто для свободной ячейки
	DisplayStatus string

	Booking *BookingCard
	Class   *ClassCard
}

// BookingCard карточка бронирования в стартовой ячейке
type BookingCard struct {
	ID       int64
	UserID   int64
	UserName string
	Start    time.Time
	End      time.Time
	Status   string
	Paid     bool
}

// ClassCard карточка занятия в стартовой ячейке
type ClassCard struct {
	ID             int64
	Title          string
	InstructorName string
	Start          time.Time
	End            time.Time
	MaxCapacity    int
	EnrolledCount  int
	Status         string
}

// Response модель ответа с расписанием корта на день
type Response struct {
	CourtID int64
	Date    time.Time
	Cells   []Cell
}

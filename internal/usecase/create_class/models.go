package create_class

import "time"

// Request модель запроса на создание группового занятия
type Request struct {
	CourtID        int64     // ID корта
	Title          string    // Название занятия
	InstructorName string    // Имя инструктора
	Start          time.Time // Начало интервала (выровнено по часу)
	End            time.Time // Конец интервала (выровнено по часу)
	MaxCapacity    int       // Максимальное количество участников
	PriceCents     int       // Цена участия
}

// Response модель ответа с созданным занятием
type Response struct {
	ID             int64
	CourtID        int64
	Title          string
	InstructorName string

	Start time.Time
	End   time.Time

	MaxCapacity   int
	EnrolledCount int
	PriceCents    int
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

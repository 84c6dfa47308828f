package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64     // ID пользователя
	UserName string    // Имя пользователя (денормализуется в бронирование)
	CourtID  int64     // ID корта
	Start    time.Time // Начало интервала (выровнено по часу)
	End      time.Time // Конец интервала (выровнено по часу)
	Notes    *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	CourtID  int64
	UserID   int64
	UserName string

	Start time.Time
	End   time.Time

	Status        string
	PaymentStatus string

	// Снимок цены на момент бронирования
	PriceSnapshotCents int

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

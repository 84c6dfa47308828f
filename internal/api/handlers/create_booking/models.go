package create_booking

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/PCM-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Интервал задается датой и часами сетки: [startHour, endHour)
type CreateBookingRequest struct {
	CourtID   int64   `json:"courtId"`
	UserName  string  `json:"userName"`
	Date      string  `json:"date"` // "2025-10-15"
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	CourtID            int64   `json:"courtId"`
	UserID             int64   `json:"userId"`
	UserName           string  `json:"userName"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	PriceSnapshotCents int     `json:"priceSnapshotCents"`
	Notes              *string `json:"notes,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:   userID,
		UserName: r.UserName,
		CourtID:  r.CourtID,
		Start:    domain.HourSlot(date, r.StartHour),
		End:      domain.HourSlot(date, r.EndHour),
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		CourtID:            resp.CourtID,
		UserID:             resp.UserID,
		UserName:           resp.UserName,
		Start:              resp.Start.Format(time.RFC3339),
		End:                resp.End.Format(time.RFC3339),
		Status:             resp.Status,
		PaymentStatus:      resp.PaymentStatus,
		PriceSnapshotCents: resp.PriceSnapshotCents,
		Notes:              resp.Notes,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}

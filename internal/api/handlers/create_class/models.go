package create_class

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	createClass "github.com/m04kA/PCM-SchedulingService/internal/usecase/create_class"
)

// CreateClassRequest HTTP request model
// Интервал задается датой и часами сетки: [startHour, endHour)
type CreateClassRequest struct {
	CourtID        int64  `json:"courtId"`
	Title          string `json:"title"`
	InstructorName string `json:"instructorName"`
	Date           string `json:"date"` // "2025-10-15"
	StartHour      int    `json:"startHour"`
	EndHour        int    `json:"endHour"`
	MaxCapacity    int    `json:"maxCapacity"`
	PriceCents     int    `json:"priceCents"`
}

// ClassResponse HTTP response model
type ClassResponse struct {
	ID             int64  `json:"id"`
	CourtID        int64  `json:"courtId"`
	Title          string `json:"title"`
	InstructorName string `json:"instructorName"`
	Start          string `json:"start"`
	End            string `json:"end"`
	MaxCapacity    int    `json:"maxCapacity"`
	EnrolledCount  int    `json:"enrolledCount"`
	PriceCents     int    `json:"priceCents"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateClassRequest) ToUseCaseRequest() (*createClass.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createClass.Request{
		CourtID:        r.CourtID,
		Title:          r.Title,
		InstructorName: r.InstructorName,
		Start:          domain.HourSlot(date, r.StartHour),
		End:            domain.HourSlot(date, r.EndHour),
		MaxCapacity:    r.MaxCapacity,
		PriceCents:     r.PriceCents,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createClass.Response) *ClassResponse {
	return &ClassResponse{
		ID:             resp.ID,
		CourtID:        resp.CourtID,
		Title:          resp.Title,
		InstructorName: resp.InstructorName,
		Start:          resp.Start.Format(time.RFC3339),
		End:            resp.End.Format(time.RFC3339),
		MaxCapacity:    resp.MaxCapacity,
		EnrolledCount:  resp.EnrolledCount,
		PriceCents:     resp.PriceCents,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

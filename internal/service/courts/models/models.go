package models

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Sport          string    `json:"sport"`
	Surface        string    `json:"surface"`
	Indoor         bool      `json:"indoor"`
	BasePriceCents int       `json:"basePriceCents"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []*CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в response
func FromDomainCourt(court *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:             court.ID,
		Name:           court.Name,
		Sport:          court.Sport,
		Surface:        court.Surface,
		Indoor:         court.Indoor,
		BasePriceCents: court.BasePriceCents,
		IsActive:       court.IsActive,
		CreatedAt:      court.CreatedAt,
		UpdatedAt:      court.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в response
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	result := make([]*CourtResponse, 0, len(courts))
	for _, court := range courts {
		result = append(result, FromDomainCourt(court))
	}
	return &CourtListResponse{Courts: result}
}

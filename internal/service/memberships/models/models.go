package models

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// Request модели

// CreateMembershipRequest запрос на оформление абонемента
type CreateMembershipRequest struct {
	ClubID          int64 `json:"clubId"`
	UserID          int64 `json:"userId"`
	MonthlyFeeCents int   `json:"monthlyFeeCents"`
}

// UpdateBillingDateRequest запрос на перенос даты следующего списания
type UpdateBillingDateRequest struct {
	NextBillingDate time.Time `json:"nextBillingDate"`
}

// Response модели

// MembershipResponse ответ с данными абонемента
type MembershipResponse struct {
	ID              int64      `json:"id"`
	ClubID          int64      `json:"clubId"`
	UserID          int64      `json:"userId"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	MonthlyFeeCents int        `json:"monthlyFeeCents"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	NextBillingDate *time.Time `json:"nextBillingDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// MembershipListResponse ответ со списком абонементов
type MembershipListResponse struct {
	Memberships []*MembershipResponse `json:"memberships"`
}

// FromDomainMembership конвертирует domain модель в response
func FromDomainMembership(membership *domain.ClubMembership) *MembershipResponse {
	return &MembershipResponse{
		ID:              membership.ID,
		ClubID:          membership.ClubID,
		UserID:          membership.UserID,
		Status:          string(membership.Status),
		PaymentStatus:   string(membership.PaymentStatus),
		MonthlyFeeCents: membership.MonthlyFeeCents,
		StartDate:       membership.StartDate,
		EndDate:         membership.EndDate,
		NextBillingDate: membership.NextBillingDate,
		CreatedAt:       membership.CreatedAt,
		UpdatedAt:       membership.UpdatedAt,
	}
}

// FromDomainMembershipList конвертирует список domain моделей в response
func FromDomainMembershipList(memberships []*domain.ClubMembership) *MembershipListResponse {
	result := make([]*MembershipResponse, 0, len(memberships))
	for _, membership := range memberships {
		result = append(result, FromDomainMembership(membership))
	}
	return &MembershipListResponse{Memberships: result}
}

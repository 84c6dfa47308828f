package models

import (
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
)

// Request модели

// CancelClassRequest запрос на отмену занятия
type CancelClassRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// ClassResponse ответ с данными занятия
type ClassResponse struct {
	ID             int64     `json:"id"`
	CourtID        int64     `json:"courtId"`
	Title          string    `json:"title"`
	InstructorName string    `json:"instructorName"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	MaxCapacity    int       `json:"maxCapacity"`
	EnrolledCount  int       `json:"enrolledCount"`
	RemainingSpots int       `json:"remainingSpots"`
	PriceCents     int       `json:"priceCents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EnrollmentResponse ответ с данными записи на занятие
type EnrollmentResponse struct {
	ID         int64     `json:"id"`
	ClassID    int64     `json:"classId"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// ClassWithEnrollmentsResponse ответ с занятием и списком участников
type ClassWithEnrollmentsResponse struct {
	Class       *ClassResponse        `json:"class"`
	Enrollments []*EnrollmentResponse `json:"enrollments"`
}

// FromDomainClass конвертирует domain модель в response
func FromDomainClass(session *domain.ClassSession) *ClassResponse {
	return &ClassResponse{
		ID:             session.ID,
		CourtID:        session.CourtID,
		Title:          session.Title,
		InstructorName: session.InstructorName,
		StartTime:      session.StartTime,
		EndTime:        session.EndTime,
		MaxCapacity:    session.MaxCapacity,
		EnrolledCount:  session.EnrolledCount,
		RemainingSpots: session.RemainingSpots(),
		PriceCents:     session.PriceCents,
		Status:         string(session.Status),
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

// FromDomainEnrollment конвертирует domain модель в response
func FromDomainEnrollment(enrollment *domain.Enrollment) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:         enrollment.ID,
		ClassID:    enrollment.ClassID,
		UserID:     enrollment.UserID,
		UserName:   enrollment.UserName,
		Status:     string(enrollment.Status),
		EnrolledAt: enrollment.EnrolledAt,
	}
}

// FromDomainEnrollmentList конвертирует список domain моделей в response
func FromDomainEnrollmentList(enrollments []*domain.Enrollment) []*EnrollmentResponse {
	result := make([]*EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		result = append(result, FromDomainEnrollment(enrollment))
	}
	return result
}

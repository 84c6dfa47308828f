package enroll_students

import (
	enrollStudents "github.com/m04kA/PCM-SchedulingService/internal/usecase/enroll_students"
)

// CandidateRequest кандидат на запись в HTTP запросе
type CandidateRequest struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
}

// EnrollStudentsRequest HTTP request model
type EnrollStudentsRequest struct {
	Candidates []CandidateRequest `json:"candidates"`
}

// EnrollmentResultResponse результат попытки записи одного кандидата
type EnrollmentResultResponse struct {
	UserID       int64   `json:"userId"`
	Success      bool    `json:"success"`
	EnrollmentID *int64  `json:"enrollmentId,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// EnrollStudentsResponse HTTP response model
type EnrollStudentsResponse struct {
	Summary string                     `json:"summary"`
	Results []EnrollmentResultResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollStudentsRequest) ToUseCaseRequest(classID int64) *enrollStudents.Request {
	candidates := make([]enrollStudents.Candidate, 0, len(r.Candidates))
	for _, candidate := range r.Candidates {
		candidates = append(candidates, enrollStudents.Candidate{
			UserID:   candidate.UserID,
			UserName: candidate.UserName,
		})
	}
	return &enrollStudents.Request{
		ClassID:    classID,
		Candidates: candidates,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *enrollStudents.Response) *EnrollStudentsResponse {
	results := make([]EnrollmentResultResponse, 0, len(resp.Results))
	for _, result := range resp.Results {
		results = append(results, EnrollmentResultResponse{
			UserID:       result.UserID,
			Success:      result.Success,
			EnrollmentID: result.EnrollmentID,
			Reason:       result.Reason,
		})
	}
	return &EnrollStudentsResponse{
		Summary: resp.Summary,
		Results: results,
	}
}

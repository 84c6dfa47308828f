package enroll_students

// Итог пакетной записи
const (
	SummaryAllSucceeded = "ALL_SUCCEEDED"
	SummaryPartial      = "PARTIAL"
	SummaryAllFailed    = "ALL_FAILED"
)

// Candidate кандидат на запись в занятие
type Candidate struct {
	UserID   int64
	UserName string
}

// Request модель запроса на пакетную запись участников
type Request struct {
	ClassID    int64
	Candidates []Candidate
}

// EnrollmentResult результат попытки записи одного кандидата
type EnrollmentResult struct {
	UserID       int64
	Success      bool
	EnrollmentID *int64  // ID созданной записи при успехе
	Reason       *string // Причина отказа при неуспехе
}

// Response модель ответа пакетной записи
type Response struct {
	Summary string
	Results []EnrollmentResult
}

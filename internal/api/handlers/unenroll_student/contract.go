package unenroll_student

import "context"

type ClassService interface {
	Unenroll(ctx context.Context, enrollmentID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

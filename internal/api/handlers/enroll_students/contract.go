package enroll_students

import (
	"context"

	enrollStudents "github.com/m04kA/PCM-SchedulingService/internal/usecase/enroll_students"
)

type EnrollStudentsUseCase interface {
	Execute(ctx context.Context, req *enrollStudents.Request) (*enrollStudents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

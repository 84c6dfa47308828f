package cancel_class

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/classes/models"
)

type ClassService interface {
	Cancel(ctx context.Context, classID int64, req *models.CancelClassRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_courts

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/courts/models"
)

type CourtService interface {
	List(ctx context.Context) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

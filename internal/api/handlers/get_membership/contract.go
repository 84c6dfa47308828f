package get_membership

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

type MembershipService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

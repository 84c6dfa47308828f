package get_user_memberships

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

type MembershipService interface {
	GetUserMemberships(ctx context.Context, userID int64) (*models.MembershipListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

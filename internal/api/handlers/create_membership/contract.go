package create_membership

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

type MembershipService interface {
	Create(ctx context.Context, req *models.CreateMembershipRequest) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

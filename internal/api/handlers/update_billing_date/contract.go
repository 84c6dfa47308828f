package update_billing_date

import (
	"context"

	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

type MembershipService interface {
	UpdateBillingDate(ctx context.Context, id int64, userID int64, req *models.UpdateBillingDateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_billing_date

import (
	"fmt"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

// Request тело запроса на перенос даты следующего списания
type Request struct {
	NextBillingDate string `json:"nextBillingDate"` // YYYY-MM-DD
}

func (r *Request) ToServiceRequest() (*models.UpdateBillingDateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.NextBillingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid nextBillingDate %q: %w", r.NextBillingDate, err)
	}

	return &models.UpdateBillingDateRequest{
		NextBillingDate: date,
	}, nil
}

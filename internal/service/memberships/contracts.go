package memberships

import (
	"context"
	"time"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/internal/integrations/paymentservice"
)

// MembershipRepository интерфейс репозитория абонементов
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.ClubMembership) (*domain.ClubMembership, error)
	GetByID(ctx context.Context, id int64) (*domain.ClubMembership, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.ClubMembership, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MembershipStatus) error
	Cancel(ctx context.Context, id int64) error
	UpdateBilling(ctx context.Context, id int64, paymentStatus domain.MembershipPaymentStatus, nextBillingDate *time.Time) error
	UpdateNextBillingDate(ctx context.Context, id int64, nextBillingDate time.Time) error
}

// PaymentServiceClient интерфейс клиента для PaymentService
type PaymentServiceClient interface {
	Charge(ctx context.Context, request paymentservice.ChargeRequest) (*paymentservice.ChargeResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

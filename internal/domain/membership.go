package domain

import "time"

// MembershipStatus статус клубного абонемента
type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "ACTIVE"
	MembershipStatusSuspended MembershipStatus = "SUSPENDED"
	MembershipStatusExpired   MembershipStatus = "EXPIRED"
	MembershipStatusCancelled MembershipStatus = "CANCELLED"
)

// MembershipPaymentStatus статус оплаты абонемента
type MembershipPaymentStatus string

const (
	MembershipPaymentUpToDate MembershipPaymentStatus = "UP_TO_DATE"
	MembershipPaymentPastDue  MembershipPaymentStatus = "PAST_DUE"
)

// ClubMembership представляет клубный абонемент участника
// Создается в статусе ACTIVE, переходы статусов строго ограничены:
//
//	ACTIVE    -> SUSPENDED, CANCELLED
//	SUSPENDED -> ACTIVE (resume), CANCELLED
//	CANCELLED, EXPIRED - терминальные, без исходящих переходов
//
// Терминальные абонементы сохраняются для истории и никогда не удаляются
type ClubMembership struct {
	ID     int64
	ClubID int64
	UserID int64

	Status        MembershipStatus
	PaymentStatus MembershipPaymentStatus

	// Снимок месячной платы клуба на момент вступления
	MonthlyFeeCents int

	StartDate       time.Time
	EndDate         *time.Time
	NextBillingDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive производный признак: абонемент не в терминальном статусе
func (m *ClubMembership) IsActive() bool {
	return m.Status != MembershipStatusCancelled && m.Status != MembershipStatusExpired
}

// IsTerminal проверяет, находится ли абонемент в терминальном статусе
func (m *ClubMembership) IsTerminal() bool {
	return m.Status == MembershipStatusCancelled || m.Status == MembershipStatusExpired
}

// CanSuspend приостановка разрешена только из ACTIVE
func (m *ClubMembership) CanSuspend() bool {
	return m.Status == MembershipStatusActive
}

// CanResume возобновление разрешено только из SUSPENDED
func (m *ClubMembership) CanResume() bool {
	return m.Status == MembershipStatusSuspended
}

// CanCancel отмена разрешена из любого нетерминального статуса
func (m *ClubMembership) CanCancel() bool {
	return !m.IsTerminal()
}

// CanRenew продление (списание оплаты) разрешено пока абонемент не терминален
// Статус SUSPENDED продлению не мешает: продление и статус независимы
func (m *ClubMembership) CanRenew() bool {
	return m.IsActive()
}

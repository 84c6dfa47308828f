package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClubMembership_Transitions(t *testing.T) {
	tests := []struct {
		status     MembershipStatus
		canSuspend bool
		canResume  bool
		canCancel  bool
		canRenew   bool
	}{
		{MembershipStatusActive, true, false, true, true},
		{MembershipStatusSuspended, false, true, true, true},
		{MembershipStatusCancelled, false, false, false, false},
		{MembershipStatusExpired, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			m := &ClubMembership{Status: tt.status}

			assert.Equal(t, tt.canSuspend, m.CanSuspend())
			assert.Equal(t, tt.canResume, m.CanResume())
			assert.Equal(t, tt.canCancel, m.CanCancel())
			assert.Equal(t, tt.canRenew, m.CanRenew())
		})
	}
}

func TestClubMembership_IsTerminal(t *testing.T) {
	assert.False(t, (&ClubMembership{Status: MembershipStatusActive}).IsTerminal())
	assert.False(t, (&ClubMembership{Status: MembershipStatusSuspended}).IsTerminal())
	assert.True(t, (&ClubMembership{Status: MembershipStatusCancelled}).IsTerminal())
	assert.True(t, (&ClubMembership{Status: MembershipStatusExpired}).IsTerminal())
}

// Продление не зависит от приостановки: SUSPENDED продлевается,
// но остаётся приостановленным
func TestClubMembership_RenewWhileSuspended(t *testing.T) {
	m := &ClubMembership{Status: MembershipStatusSuspended}

	assert.True(t, m.CanRenew())
	assert.False(t, m.CanSuspend())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassSession_RemainingSpots(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		enrolled int
		want     int
	}{
		{"empty class", 10, 0, 10},
		{"partially filled", 10, 7, 3},
		{"full", 10, 10, 0},
		{"overfilled clamps to zero", 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ClassSession{MaxCapacity: tt.capacity, EnrolledCount: tt.enrolled}
			assert.Equal(t, tt.want, c.RemainingSpots())
		})
	}
}

func TestClassSession_IsFull(t *testing.T) {
	assert.False(t, (&ClassSession{MaxCapacity: 5, EnrolledCount: 4}).IsFull())
	assert.True(t, (&ClassSession{MaxCapacity: 5, EnrolledCount: 5}).IsFull())
}

func TestClassSession_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status ClassStatus
		want   bool
	}{
		{ClassStatusOpen, true},
		{ClassStatusFull, true},
		{ClassStatusCancelled, false},
		{ClassStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			c := &ClassSession{Status: tt.status}
			assert.Equal(t, tt.want, c.CanBeCancelled())
		})
	}
}

func TestEnrollment_IsActive(t *testing.T) {
	assert.True(t, (&Enrollment{Status: EnrollmentStatusConfirmed}).IsActive())
	assert.False(t, (&Enrollment{Status: EnrollmentStatusWithdrawn}).IsActive())
}

package create_membership

// CreateMembershipRequest HTTP request model
type CreateMembershipRequest struct {
	ClubID          int64 `json:"clubId"`
	MonthlyFeeCents int   `json:"monthlyFeeCents"`
}

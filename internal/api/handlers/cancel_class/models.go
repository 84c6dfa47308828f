package cancel_class

// CancelClassRequest HTTP request model
type CancelClassRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

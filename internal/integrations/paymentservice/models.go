package paymentservice

// ChargeRequest запрос на списание месячной платы по абонементу
type ChargeRequest struct {
	MembershipID int64  `json:"membership_id"`
	UserID       int64  `json:"user_id"`
	AmountCents  int    `json:"amount_cents"`
	Description  string `json:"description"`
}

// ChargeResponse результат списания от PaymentService
type ChargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

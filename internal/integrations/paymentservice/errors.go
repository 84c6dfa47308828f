package paymentservice

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда платёж отклонён платёжной системой
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceUnavailable возвращается при недоступности PaymentService
	// Вызывающий код трактует это как неуспешное списание (PAST_DUE)
	ErrServiceUnavailable = errors.New("paymentservice unavailable")
)

package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с PaymentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Charge списывает месячную плату по абонементу
// Отклонение платежа возвращается как ErrPaymentDeclined,
// недоступность сервиса - как ErrServiceUnavailable; в обоих случаях
// вызывающий код переводит абонемент в PAST_DUE
func (c *Client) Charge(ctx context.Context, request ChargeRequest) (*ChargeResponse, error) {
	url := fmt.Sprintf("%s/internal/payments/charge", c.baseURL)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.log.Info("Charging membership_id=%d, amount_cents=%d", request.MembershipID, request.AmountCents)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("PaymentService unavailable for membership_id=%d: %v", request.MembershipID, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		c.log.Info("Payment declined for membership_id=%d", request.MembershipID)
		return nil, ErrPaymentDeclined
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid charge request", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var charge ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Charge succeeded for membership_id=%d, transaction_id=%s", request.MembershipID, charge.TransactionID)
	return &charge, nil
}

package paymentservice

// Logger интерфейс логгера для клиента PaymentService
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

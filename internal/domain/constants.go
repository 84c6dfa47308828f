package domain

// Business validation constants
const (
	MinClassCapacity = 1
	MaxClassCapacity = 50

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	MaxBookingDurationHours = 4
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Производные подписи статусов для отображения в интерфейсе клуба
// Строки фиксированы продуктом (испанская локаль), не переводить
const (
	LabelCancelada  = "Cancelada"
	LabelCompletada = "Completada"
	LabelPagada     = "Pagada"
	LabelPendiente  = "Pendiente"
	LabelConfirmada = "Confirmada"

	LabelFinalizada = "Finalizada"
	LabelEnCurso    = "En Curso"
	LabelCompleta   = "Completa"
	LabelAbierta    = "Abierta"
	LabelProgramada = "Programada"
)

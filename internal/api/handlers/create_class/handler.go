package create_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	createClass "github.com/m04kA/PCM-SchedulingService/internal/usecase/create_class"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound       = "корт не найден"
	msgCourtInactive       = "корт недоступен"
	msgSlotConflict        = "выбранный интервал пересекается с существующей занятостью"
	msgInvalidTimeRange    = "некорректный временной интервал"
	msgNotHourAligned      = "интервал должен быть выровнен по целым часам"
	msgOutsideWorkingHours = "интервал выходит за рабочие часы клуба (09:00-23:00)"
	msgInvalidCapacity     = "некорректная вместимость занятия"
	msgDateInPast          = "нельзя запланировать занятие в прошлом"
)

type Handler struct {
	useCase CreateClassUseCase
	logger  Logger
}

func NewHandler(useCase CreateClassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /classes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /classes - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createClass.ErrSlotConflict):
			h.logger.Warn("POST /classes - Slot conflict: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createClass.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createClass.ErrCourtInactive):
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, createClass.ErrNotHourAligned):
			handlers.RespondBadRequest(w, msgNotHourAligned)

		case errors.Is(err, createClass.ErrOutsideWorkingHours):
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createClass.ErrInvalidCapacity):
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, createClass.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createClass.ErrInvalidTimeRange),
			errors.Is(err, createClass.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("POST /classes - Failed to create class: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes - Class created successfully: class_id=%d, court_id=%d", result.ID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

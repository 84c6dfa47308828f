package cancel_class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PCM-SchedulingService/internal/service/classes"
	"github.com/m04kA/PCM-SchedulingService/internal/service/classes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClassID     = "некорректный ID занятия"
	msgClassNotFound      = "занятие не найдено"
	msgCannotCancel       = "занятие нельзя отменить в текущем статусе"
)

type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/classes/{classId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.ParseInt(mux.Vars(r)["classId"], 10, 64)
	if err != nil || classID <= 0 {
		h.logger.Warn("PATCH /classes/{classId}/cancel - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	var req CancelClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /classes/%d/cancel - Invalid request body: %v", classID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), classID, &models.CancelClassRequest{
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrClassNotFound):
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, classes.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, classes.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /classes/%d/cancel - Failed to cancel class: %v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /classes/%d/cancel - Class cancelled", classID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

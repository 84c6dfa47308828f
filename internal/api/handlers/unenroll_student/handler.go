package unenroll_student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PCM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PCM-SchedulingService/internal/service/classes"
)

const (
	msgInvalidEnrollmentID = "некорректный ID записи"
	msgUnauthorized        = "требуется аутентификация"
	msgEnrollmentNotFound  = "запись на занятие не найдена"
	msgAccessDenied        = "нет доступа к этой записи"
	msgNotEnrolled         = "запись уже неактивна"
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

// Handle DELETE /api/v1/enrollments/{enrollmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	enrollmentID, err := strconv.ParseInt(mux.Vars(r)["enrollmentId"], 10, 64)
	if err != nil || enrollmentID <= 0 {
		h.logger.Warn("DELETE /enrollments/{enrollmentId} - Invalid enrollment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnrollmentID)
		return
	}

	if err := h.service.Unenroll(r.Context(), enrollmentID, userID); err != nil {
		switch {
		case errors.Is(err, classes.ErrEnrollmentNotFound):
			handlers.RespondNotFound(w, msgEnrollmentNotFound)

		case errors.Is(err, classes.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, classes.ErrNotEnrolled):
			handlers.RespondConflict(w, msgNotEnrolled)

		default:
			h.logger.Error("DELETE /enrollments/%d - Failed to unenroll: %v", enrollmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /enrollments/%d - Enrollment withdrawn by user=%d", enrollmentID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

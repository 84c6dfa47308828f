package enroll_students

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	enrollStudents "github.com/m04kA/PCM-SchedulingService/internal/usecase/enroll_students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidClassID     = "некорректный ID занятия"
	msgClassNotFound      = "занятие не найдено"
	msgClassNotOpen       = "занятие недоступно для записи"
	msgCapacityShortfall  = "недостаточно свободных мест для всего пакета"
)

type Handler struct {
	useCase EnrollStudentsUseCase
	logger  Logger
}

func NewHandler(useCase EnrollStudentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/classes/{classId}/enrollments
// Пакетная запись: при нехватке мест пакет отклоняется целиком (409),
// частичные неуспехи отдельных кандидатов отражаются в теле ответа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.ParseInt(mux.Vars(r)["classId"], 10, 64)
	if err != nil || classID <= 0 {
		h.logger.Warn("POST /classes/{classId}/enrollments - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	var req EnrollStudentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /classes/%d/enrollments - Invalid request body: %v", classID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(classID))
	if err != nil {
		switch {
		case errors.Is(err, enrollStudents.ErrClassNotFound):
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, enrollStudents.ErrClassNotOpen):
			handlers.RespondConflict(w, msgClassNotOpen)

		case errors.Is(err, enrollStudents.ErrCapacityShortfall):
			h.logger.Warn("POST /classes/%d/enrollments - Capacity shortfall: %v", classID, err)
			handlers.RespondConflict(w, msgCapacityShortfall)

		case errors.Is(err, enrollStudents.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /classes/%d/enrollments - Failed to enroll: %v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /classes/%d/enrollments - Batch processed: summary=%s", classID, result.Summary)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

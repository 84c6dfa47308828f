package get_class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PCM-SchedulingService/internal/service/classes"
)

const (
	msgInvalidClassID = "некорректный ID занятия"
	msgClassNotFound  = "занятие не найдено"
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

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	classID, err := strconv.ParseInt(mux.Vars(r)["classId"], 10, 64)
	if err != nil || classID <= 0 {
		h.logger.Warn("GET /classes/{classId} - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	result, err := h.service.GetByID(r.Context(), classID)
	if err != nil {
		if errors.Is(err, classes.ErrClassNotFound) {
			handlers.RespondNotFound(w, msgClassNotFound)
			return
		}
		h.logger.Error("GET /classes/%d - Failed to fetch class: %v", classID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

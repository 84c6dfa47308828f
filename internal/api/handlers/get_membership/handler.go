package get_membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PCM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships"
)

const (
	msgInvalidMembershipID = "некорректный ID абонемента"
	msgUnauthorized        = "требуется аутентификация"
	msgMembershipNotFound  = "абонемент не найден"
	msgAccessDenied        = "нет доступа к этому абонементу"
)

type Handler struct {
	service MembershipService
	logger  Logger
}

func NewHandler(service MembershipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/memberships/{membershipId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	membershipID, err := strconv.ParseInt(mux.Vars(r)["membershipId"], 10, 64)
	if err != nil || membershipID <= 0 {
		h.logger.Warn("GET /memberships/{membershipId} - Invalid membership ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMembershipID)
		return
	}

	result, err := h.service.GetByID(r.Context(), membershipID, userID)
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipNotFound):
			handlers.RespondNotFound(w, msgMembershipNotFound)

		case errors.Is(err, memberships.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /memberships/%d - Failed to fetch membership: %v", membershipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

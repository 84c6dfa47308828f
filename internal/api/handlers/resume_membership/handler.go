package resume_membership

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
	msgIllegalTransition   = "возобновление доступно только для приостановленного абонемента"
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

// Handle PATCH /api/v1/memberships/{membershipId}/resume
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	membershipID, err := strconv.ParseInt(mux.Vars(r)["membershipId"], 10, 64)
	if err != nil || membershipID <= 0 {
		h.logger.Warn("PATCH /memberships/{membershipId}/resume - Invalid membership ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMembershipID)
		return
	}

	if err := h.service.Resume(r.Context(), membershipID, userID); err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipNotFound):
			handlers.RespondNotFound(w, msgMembershipNotFound)

		case errors.Is(err, memberships.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, memberships.ErrIllegalTransition):
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /memberships/%d/resume - Failed to resume: %v", membershipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /memberships/%d/resume - Membership resumed by user=%d", membershipID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

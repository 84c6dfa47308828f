package renew_membership

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
	msgIllegalTransition   = "продление доступно только для действующего абонемента"
	msgPaymentFailed       = "не удалось списать оплату за продление"
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

// Handle POST /api/v1/memberships/{membershipId}/renew
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	membershipID, err := strconv.ParseInt(mux.Vars(r)["membershipId"], 10, 64)
	if err != nil || membershipID <= 0 {
		h.logger.Warn("POST /memberships/{membershipId}/renew - Invalid membership ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMembershipID)
		return
	}

	if err := h.service.Renew(r.Context(), membershipID, userID); err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipNotFound):
			handlers.RespondNotFound(w, msgMembershipNotFound)

		case errors.Is(err, memberships.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, memberships.ErrIllegalTransition):
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, memberships.ErrPaymentFailed):
			h.logger.Warn("POST /memberships/%d/renew - Payment failed: %v", membershipID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		default:
			h.logger.Error("POST /memberships/%d/renew - Failed to renew: %v", membershipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /memberships/%d/renew - Membership renewed by user=%d", membershipID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

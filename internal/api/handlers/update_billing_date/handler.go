package update_billing_date

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
	msgInvalidBody         = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgMembershipNotFound  = "абонемент не найден"
	msgAccessDenied        = "нет доступа к этому абонементу"
	msgIllegalTransition   = "дата списания недоступна для завершённого абонемента"
	msgBillingDateInPast   = "дата следующего списания не может быть в прошлом"
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

// Handle PATCH /api/v1/memberships/{membershipId}/billing-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	membershipID, err := strconv.ParseInt(mux.Vars(r)["membershipId"], 10, 64)
	if err != nil || membershipID <= 0 {
		h.logger.Warn("PATCH /memberships/{membershipId}/billing-date - Invalid membership ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMembershipID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /memberships/%d/billing-date - Invalid request body: %v", membershipID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /memberships/%d/billing-date - Invalid date: %v", membershipID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateBillingDate(r.Context(), membershipID, userID, serviceReq); err != nil {
		switch {
		case errors.Is(err, memberships.ErrMembershipNotFound):
			handlers.RespondNotFound(w, msgMembershipNotFound)

		case errors.Is(err, memberships.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, memberships.ErrIllegalTransition):
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, memberships.ErrBillingDateInPast):
			handlers.RespondBadRequest(w, msgBillingDateInPast)

		default:
			h.logger.Error("PATCH /memberships/%d/billing-date - Failed to update billing date: %v", membershipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /memberships/%d/billing-date - Billing date updated by user=%d", membershipID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

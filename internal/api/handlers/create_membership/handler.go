package create_membership

import (
	"errors"
	"net/http"

	"github.com/m04kA/PCM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/PCM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships"
	"github.com/m04kA/PCM-SchedulingService/internal/service/memberships/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgDuplicateMembership = "абонемент для этого клуба уже существует"
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

// Handle POST /api/v1/memberships
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateMembershipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /memberships - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateMembershipRequest{
		ClubID:          req.ClubID,
		UserID:          userID,
		MonthlyFeeCents: req.MonthlyFeeCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrDuplicateMembership):
			h.logger.Warn("POST /memberships - Duplicate membership: club_id=%d, user_id=%d", req.ClubID, userID)
			handlers.RespondConflict(w, msgDuplicateMembership)

		case errors.Is(err, memberships.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /memberships - Failed to create membership: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /memberships - Membership created: membership_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

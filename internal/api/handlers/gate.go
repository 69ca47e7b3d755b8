package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/gate"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductsGate interface {
	Check(ctx context.Context, session string) (gate.Status, error)
	Challenge(ctx context.Context, session, username, password string) (gate.Status, error)
	ExpiresAt(ctx context.Context, session string) time.Time
}

type GateHandler struct {
	gate      ProductsGate
	validator *validator.Validate
}

func NewGateHandler(g ProductsGate) *GateHandler {
	return &GateHandler{gate: g, validator: utils.NewValidator()}
}

// Status godoc
//	@Summary		Products-area grant of the current session
//	@Tags			Gate
//	@Produce		json
//	@Success		200 {object} models.GateStatus "Granted or denied"
//	@Failure		401 {object} response.ErrorResponse "Authentication required"
//	@Security		BearerAuth
//	@Router			/gate [get]
func (h *GateHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		status, err := h.gate.Check(r.Context(), claims.SessionID)
		if err != nil {
			logger.Error("Gate check failed", slog.String("error", err.Error()))
			response.Error(w, errors.ThirdPartyError("Failed to check products-area access").WithError(err))
			return
		}

		response.Success(w, http.StatusOK, h.view(r.Context(), claims.SessionID, status))

	}
}

// Challenge godoc
//	@Summary		Unlock the products area
//	@Tags			Gate
//	@Accept			json
//	@Produce		json
//	@Param			challenge body models.GateChallenge true "Shared products-area credentials"
//	@Success		200 {object} models.GateStatus "Granted"
//	@Failure		401 {object} response.ErrorResponse "Invalid products-area credentials"
//	@Security		BearerAuth
//	@Router			/gate/challenge [post]
func (h *GateHandler) Challenge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.GateChallenge
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		status, err := h.gate.Challenge(r.Context(), claims.SessionID, req.Username, req.Password)
		if err != nil {
			logger.Error("Gate challenge failed", slog.String("error", err.Error()))
			if _, ok := errors.IsAppError(err); !ok {
				err = errors.ThirdPartyError("Failed to store products-area access").WithError(err)
			}
			response.Error(w, err)
			return
		}

		if status != gate.Granted {
			response.Error(w, errors.UnauthorizedError("Invalid products-area credentials"))
			return
		}

		logger.Info("Products area unlocked")
		response.Success(w, http.StatusOK, h.view(r.Context(), claims.SessionID, status))

	}
}

func (h *GateHandler) view(ctx context.Context, session string, status gate.Status) models.GateStatus {
	view := models.GateStatus{Status: status.String()}

	if status == gate.Granted {
		if expiresAt := h.gate.ExpiresAt(ctx, session); !expiresAt.IsZero() {
			view.ExpiresAt = &expiresAt
		}
	}

	return view
}

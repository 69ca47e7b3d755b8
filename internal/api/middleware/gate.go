package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/gate"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils/response"
)

type GateChecker interface {
	Check(ctx context.Context, session string) (gate.Status, error)
}

// RequireGate admits requests whose session holds a live products-area grant.
// It must run after Authenticate.
func RequireGate(checker GateChecker) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			status, err := checker.Check(r.Context(), claims.SessionID)
			if err != nil {
				logger.Error("Gate check failed", slog.String("error", err.Error()))
				response.Error(w, errors.ThirdPartyError("Failed to check products-area access").WithError(err))
				return
			}

			if status != gate.Granted {
				logger.Info("Products area locked", slog.String("status", status.String()))
				response.Error(w, errors.GateRequiredError("Unlock the products area to continue"))
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

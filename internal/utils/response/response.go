package response

import (
	"log/slog"
	"net/http"

	"github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/goccy/go-json"
)

// APIResponse is the envelope every console endpoint answers with.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func write(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to write response", slog.Int("status", status), slog.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, status int, data any) {
	write(w, status, APIResponse{Success: true, Data: data})
}

// NoContent acknowledges a mutation that has nothing to return.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps AppErrors to their own status and code. Anything else is an
// internal error whose text is not exposed.
func Error(w http.ResponseWriter, err error) {
	status, body := describe(err)
	write(w, status, APIResponse{Error: body})
}

func describe(err error) (int, *ErrorResponse) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		return http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		}
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	return appErr.StatusCode, body
}

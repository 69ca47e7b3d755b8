package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
)

const (
	TestUID       = "operator-uid"
	TestSessionID = "session-1"
	TestEmail     = "owner@menvy.store"
)

// TestClaims are the claims of the operator every signed-in test request carries.
func TestClaims() *models.Claims {
	return &models.Claims{UID: TestUID, Email: TestEmail, SessionID: TestSessionID}
}

func newRequest(method, target string, body io.Reader, pathParams map[string]string) (*http.Request, context.Context) {
	req := httptest.NewRequest(method, target, body)
	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req, middleware.WithLogger(req.Context(), quiet)
}

// CreateTestRequestWithContext builds a request as it looks after Authenticate.
func CreateTestRequestWithContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req, ctx := newRequest(method, target, body, pathParams)

	return req.WithContext(context.WithValue(ctx, middleware.UserContextKey, TestClaims()))
}

// CreateTestRequestWithoutContext builds a request with no signed-in operator.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req, ctx := newRequest(method, target, body, pathParams)

	return req.WithContext(ctx)
}

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/gate"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubGate struct {
	status  gate.Status
	err     error
	session string
}

func (g *stubGate) Check(_ context.Context, session string) (gate.Status, error) {
	g.session = session
	return g.status, g.err
}

func TestRequireGate(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	withClaims := func(req *http.Request) *http.Request {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, &models.Claims{UID: "u1", SessionID: "s1"})
		return req.WithContext(ctx)
	}

	tests := []struct {
		name           string
		gate           *stubGate
		authenticated  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success - Granted",
			gate:           &stubGate{status: gate.Granted},
			authenticated:  true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Fail - Denied",
			gate:           &stubGate{status: gate.Denied},
			authenticated:  true,
			expectedStatus: http.StatusForbidden,
			expectedCode:   "GATE_REQUIRED",
		},
		{
			name:           "Fail - Storage error",
			gate:           &stubGate{status: gate.Unchecked, err: errors.New("redis down")},
			authenticated:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "THIRD_PARTY_ERROR",
		},
		{
			name:           "Fail - Not authenticated",
			gate:           &stubGate{status: gate.Granted},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			if tc.authenticated {
				req = withClaims(req)
			}
			rr := httptest.NewRecorder()

			// Act
			middleware.RequireGate(tc.gate)(ok).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedCode)
			}
			if tc.authenticated {
				assert.Equal(t, "s1", tc.gate.session)
			}
		})
	}
}

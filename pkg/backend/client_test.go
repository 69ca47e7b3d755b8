package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token(context.Context) (string, error) {
	return s.token, s.err
}

type item struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestClientGet(t *testing.T) {
	t.Run("Success - Unwraps data envelope and sends bearer token", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"data":[{"_id":"p1","name":"Cap"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithTokenSource(staticToken{token: "abc"}))

		// Act
		var out []item
		err := client.Get(context.Background(), "/products", &out)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []item{{ID: "p1", Name: "Cap"}}, out)
	})

	t.Run("Success - Body without envelope is decoded whole", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"_id":"p1","name":"Cap"}`))
		}))
		defer server.Close()

		var out item
		err := NewClient(server.URL).Get(context.Background(), "/products/p1", &out)

		require.NoError(t, err)
		assert.Equal(t, "Cap", out.Name)
	})

	t.Run("Success - No session sends unauthenticated request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithTokenSource(staticToken{}))

		var out []item
		require.NoError(t, client.Get(context.Background(), "/brands", &out))
	})

	t.Run("Success - Token failure still sends the request", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithTokenSource(staticToken{err: errors.New("expired")}))

		var out []item
		require.NoError(t, client.Get(context.Background(), "/brands", &out))
		assert.True(t, called)
	})
}

func TestClientErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantCode     string
		wantRemote   int
		wantResponse int
	}{
		{"Unauthorized", http.StatusUnauthorized, appErrors.ErrCodeUnauthorized, 0, http.StatusUnauthorized},
		{"Forbidden", http.StatusForbidden, appErrors.ErrCodeForbidden, 0, http.StatusForbidden},
		{"Not found", http.StatusNotFound, appErrors.ErrCodeRequestFailed, http.StatusNotFound, http.StatusNotFound},
		{"Server error", http.StatusInternalServerError, appErrors.ErrCodeRequestFailed, http.StatusInternalServerError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run("Failure - "+tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			// Act
			err := NewClient(server.URL).Delete(context.Background(), "/sales/s1", nil)

			// Assert
			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantRemote, appErr.RemoteStatus)
			assert.Equal(t, tt.wantResponse, appErr.StatusCode)
			assert.Equal(t, "nope", appErr.Detail)
		})
	}

	t.Run("Failure - Timeout is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(server.URL, WithTimeout(20*time.Millisecond))

		err := client.Get(context.Background(), "/products", nil)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeTransport))
	})
}

func TestClientPost(t *testing.T) {
	t.Run("Success - Encodes body and observes the call", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"_id":"","name":"Shoes"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"_id":"c9","name":"Shoes"}}`))
		}))
		defer server.Close()

		var observed []string
		client := NewClient(server.URL, WithObserver(func(method, resource string, status int, _ time.Duration) {
			observed = append(observed, method+" "+resource)
			assert.Equal(t, http.StatusCreated, status)
		}))

		// Act
		var out item
		err := client.Post(context.Background(), "/categories", item{Name: "Shoes"}, &out)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "c9", out.ID)
		assert.Equal(t, []string{"POST categories"}, observed)
	})
}

func TestClientPing(t *testing.T) {
	t.Run("Success - Client errors still count as reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		assert.NoError(t, NewClient(server.URL).Ping(context.Background()))
	})

	t.Run("Failure - Server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		assert.Error(t, NewClient(server.URL).Ping(context.Background()))
	})
}

func TestResourceOf(t *testing.T) {
	assert.Equal(t, "products", resourceOf("/products/p1"))
	assert.Equal(t, "dashboard", resourceOf("/dashboard"))
	assert.Equal(t, "sales", resourceOf("/sales?x=1"))
}

package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://menvy-server.vercel.app/api/v2"
	DefaultTimeout = 10 * time.Second
)

// defines the calls the console makes against the REST backend.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token for the current session. An empty token
// means there is no session and the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Observer is told about every finished call. status is 0 when no response arrived.
type Observer func(method, resource string, status int, elapsed time.Duration)

type restClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	observe    Observer
}

type Option func(*restClient)

func WithTokenSource(tokens TokenSource) Option {
	return func(c *restClient) { c.tokens = tokens }
}

func WithObserver(observe Observer) Option {
	return func(c *restClient) { c.observe = observe }
}

// WithHTTPClient replaces the instrumented default client, mostly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *restClient) { c.httpClient = httpClient }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *restClient) { c.httpClient.Timeout = timeout }
}

func NewClient(baseURL string, opts ...Option) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *restClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *restClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *restClient) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *restClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Ping reports whether the backend answers at all. Anything below 500 counts.
func (c *restClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashboard", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.TransportError("Backend is unreachable").WithError(err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode >= http.StatusInternalServerError {
		return appErrors.RequestFailedError(res.StatusCode, fmt.Sprintf("Backend answered with status %d", res.StatusCode))
	}

	return nil
}

func (c *restClient) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()
	status := 0

	defer func() {
		if c.observe != nil {
			c.observe(method, resourceOf(path), status, time.Since(start))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.InternalError("Failed to encode request body").WithError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "Backend request failed without response",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return appErrors.TransportError("The server could not be reached. Please try again.").WithError(err)
	}
	defer res.Body.Close()

	status = res.StatusCode

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return appErrors.TransportError("Failed to read backend response").WithError(err)
	}

	if status < 200 || status > 299 {
		return classify(status, resBody)
	}

	if out == nil || len(bytes.TrimSpace(resBody)) == 0 {
		return nil
	}

	return decodeEnvelope(resBody, out)
}

func (c *restClient) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		// the request still goes out, the backend decides what anonymous callers may do
		slog.WarnContext(ctx, "Failed to get auth token", slog.String("error", err.Error()))
		return
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// decodeEnvelope unwraps {"data": ...}; bodies without a data member are decoded whole.
func decodeEnvelope(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		body = env.Data
	}

	if err := json.Unmarshal(body, out); err != nil {
		return appErrors.ThirdPartyError("Backend returned an unreadable payload").WithError(err)
	}

	return nil
}

func classify(status int, body []byte) error {
	var detail string
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		detail = env.Message
		if detail == "" {
			detail = env.Error
		}
	}

	var appErr *appErrors.AppError
	switch status {
	case http.StatusUnauthorized:
		appErr = appErrors.UnauthorizedError("Authentication required. Please login again.")
	case http.StatusForbidden:
		appErr = appErrors.ForbiddenError("Access denied. You do not have permission to perform this action.")
	default:
		appErr = appErrors.RequestFailedError(status, fmt.Sprintf("HTTP error! status: %d", status))
	}

	if detail != "" {
		appErr.WithDetail(detail)
	}

	return appErr
}

// resourceOf keeps the first path segment so metrics stay low-cardinality.
func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	return path
}

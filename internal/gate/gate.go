// Package gate implements the second credential check in front of the
// products area. It is operator friction only: the backend enforces access on
// its own and nothing here is a security boundary.
package gate

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/cache"
	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type Status int

const (
	Unchecked Status = iota
	Granted
	Denied
)

func (s Status) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unchecked"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const DefaultWindow = 30 * time.Minute

// Gate persists one grant per identity session as two values: a boolean flag
// and the millisecond epoch at which it was granted.
type Gate struct {
	store    cache.Cache
	username string
	secret   []byte
	window   time.Duration
	now      func() time.Time
}

type Option func(*Gate)

func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

func New(cfg config.Gate, store cache.Cache, opts ...Option) (*Gate, error) {
	secret, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing gate secret: %w", err)
	}

	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}

	g := &Gate{
		store:    store,
		username: cfg.Username,
		secret:   secret,
		window:   window,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func flagKey(session string) string {
	return cache.Key(cache.GateKeyPrefix, session, "granted")
}

func timeKey(session string) string {
	return cache.Key(cache.GateKeyPrefix, session, "granted_at")
}

// Check reports whether session holds a live grant. A missing or expired
// grant is Denied and both stored values are removed.
func (g *Gate) Check(ctx context.Context, session string) (Status, error) {
	if session == "" {
		return Denied, nil
	}

	var granted bool
	found, err := g.store.Get(ctx, flagKey(session), &granted)
	if err != nil {
		return Unchecked, fmt.Errorf("reading gate flag: %w", err)
	}

	var grantedAt int64
	if found && granted {
		found, err = g.store.Get(ctx, timeKey(session), &grantedAt)
		if err != nil {
			return Unchecked, fmt.Errorf("reading gate timestamp: %w", err)
		}
	}

	if found && granted && g.now().UnixMilli()-grantedAt < g.window.Milliseconds() {
		return Granted, nil
	}

	if err := g.Clear(ctx, session); err != nil {
		return Denied, err
	}

	return Denied, nil
}

// Challenge compares the shared credentials. A mismatch is a plain Denied,
// not an error.
func (g *Gate) Challenge(ctx context.Context, session, username, password string) (Status, error) {
	if session == "" {
		return Denied, appErrors.UnauthorizedError("Sign in before unlocking the products area")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.secret, []byte(password)) == nil

	if !userOK || !passOK {
		slog.WarnContext(ctx, "Products area challenge failed", slog.String("session", session))
		return Denied, nil
	}

	if err := g.store.Set(ctx, flagKey(session), true, g.window); err != nil {
		return Denied, fmt.Errorf("storing gate flag: %w", err)
	}

	if err := g.store.Set(ctx, timeKey(session), g.now().UnixMilli(), g.window); err != nil {
		return Denied, fmt.Errorf("storing gate timestamp: %w", err)
	}

	return Granted, nil
}

// Clear drops the grant of session, e.g. on sign-out.
func (g *Gate) Clear(ctx context.Context, session string) error {
	if session == "" {
		return nil
	}

	if err := g.store.Delete(ctx, flagKey(session), timeKey(session)); err != nil {
		return fmt.Errorf("clearing gate grant: %w", err)
	}

	return nil
}

// ExpiresAt is when the grant of session lapses; zero when there is none.
func (g *Gate) ExpiresAt(ctx context.Context, session string) time.Time {
	var grantedAt int64
	if found, err := g.store.Get(ctx, timeKey(session), &grantedAt); err != nil || !found {
		return time.Time{}
	}

	return time.UnixMilli(grantedAt).Add(g.window)
}

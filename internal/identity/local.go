package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

type account struct {
	profile      models.Profile
	passwordHash []byte
}

type resetCode struct {
	hash      []byte
	expiresAt time.Time
}

type session struct {
	id        string
	uid       string
	expiresAt time.Time
}

// LocalProvider keeps accounts in process memory. It serves a single operator
// console: one session is active at a time and a new sign-in replaces it.
type LocalProvider struct {
	mu       sync.Mutex
	accounts map[string]*account
	resets   map[string]resetCode
	current  *session

	jwtKey     []byte
	tokenTTL   time.Duration
	sessionTTL time.Duration
	limiter    repository.RateLimitRepository
	mailer     Mailer
	cost       int
	now        func() time.Time
}

type Option func(*LocalProvider)

// WithRateLimiter throttles SignIn per email.
func WithRateLimiter(limiter repository.RateLimitRepository) Option {
	return func(p *LocalProvider) { p.limiter = limiter }
}

// Mailer delivers reset codes out of band.
type Mailer interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

// WithMailer enables password reset. Without a mailer it is unavailable.
func WithMailer(m Mailer) Option {
	return func(p *LocalProvider) { p.mailer = m }
}

func WithClock(now func() time.Time) Option {
	return func(p *LocalProvider) { p.now = now }
}

// WithHashCost overrides the bcrypt cost, mostly to keep tests fast.
func WithHashCost(cost int) Option {
	return func(p *LocalProvider) { p.cost = cost }
}

func NewLocalProvider(cfg config.Identity, opts ...Option) (*LocalProvider, error) {
	p := &LocalProvider{
		accounts:   make(map[string]*account),
		resets:     make(map[string]resetCode),
		jwtKey:     []byte(cfg.JWTKey),
		tokenTTL:   cfg.TokenTTL,
		sessionTTL: cfg.SessionTTL,
		cost:       bcrypt.DefaultCost,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if len(p.jwtKey) == 0 {
		return nil, fmt.Errorf("identity: JWT key must not be empty")
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		admin, err := p.newAccount(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
		if err != nil {
			return nil, fmt.Errorf("seeding admin account: %w", err)
		}
		admin.profile.EmailVerified = true
		p.accounts[normalize(cfg.AdminEmail)] = admin
	}

	return p, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *LocalProvider) newAccount(email, password, displayName string) (*account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	return &account{
		profile: models.Profile{
			UID:         uuid.NewString(),
			Email:       strings.TrimSpace(email),
			DisplayName: displayName,
		},
		passwordHash: hash,
	}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*models.Profile, error) {
	logger := middleware.LoggerFromContext(ctx)

	if p.limiter != nil {
		allowed, _, retryAfter, err := p.limiter.CheckSignInRateLimit(ctx, email)
		if err != nil {
			return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
		}
		if !allowed {
			return nil, appErrors.TooManyRequestsError("Too many sign-in attempts. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
		}
	}

	p.mu.Lock()
	acc, ok := p.accounts[normalize(email)]
	var hash []byte
	if ok {
		hash = acc.passwordHash
	}
	p.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		logger.Warn("Sign-in rejected", slog.String("email", email))
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}

	if p.limiter != nil {
		if err := p.limiter.ResetSignInAttempts(ctx, email); err != nil {
			logger.Warn("Failed to reset sign-in attempts", slog.String("error", err.Error()))
		}
	}

	return p.startSession(acc), nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, displayName string) (*models.Profile, error) {
	acc, err := p.newAccount(email, password, displayName)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	key := normalize(email)
	if _, exists := p.accounts[key]; exists {
		p.mu.Unlock()
		return nil, appErrors.ValidationError("Email already registered")
	}
	p.accounts[key] = acc
	p.mu.Unlock()

	middleware.LoggerFromContext(ctx).Info("Account registered", slog.String("uid", acc.profile.UID))

	return p.startSession(acc), nil
}

func (p *LocalProvider) startSession(acc *account) *models.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = &session{
		id:        uuid.NewString(),
		uid:       acc.profile.UID,
		expiresAt: p.now().Add(p.sessionTTL),
	}

	profile := acc.profile
	return &profile
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()

	return nil
}

func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	if p.mailer == nil {
		return appErrors.UnavailableError("Password reset is not available")
	}

	logger := middleware.LoggerFromContext(ctx)
	key := normalize(email)

	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	hash, err := bcrypt.GenerateFromPassword([]byte(code), p.cost)
	if err != nil {
		return appErrors.InternalError("Failed to issue reset code").WithError(err)
	}

	var to string
	p.mu.Lock()
	acc, ok := p.accounts[key]
	if ok {
		to = acc.profile.Email
		p.resets[key] = resetCode{hash: hash, expiresAt: p.now().Add(resetCodeTTL)}
	}
	p.mu.Unlock()

	// unknown addresses get the same answer as known ones
	if !ok {
		return nil
	}

	msg := &models.EmailMessage{
		To:      to,
		Subject: "Your Menvy password reset code",
		Content: fmt.Sprintf("Your Menvy console reset code is %s. It expires in %d minutes.", code, int(resetCodeTTL.Minutes())),
	}

	if err := p.mailer.Send(ctx, msg); err != nil {
		p.mu.Lock()
		delete(p.resets, key)
		p.mu.Unlock()

		logger.Error("Failed to mail reset code", slog.String("error", err.Error()))
	}

	return nil
}

func (p *LocalProvider) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), p.cost)
	if err != nil {
		return appErrors.InternalError("Failed to secure password").WithError(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := normalize(email)
	reset, ok := p.resets[key]
	if !ok || p.now().After(reset.expiresAt) || bcrypt.CompareHashAndPassword(reset.hash, []byte(code)) != nil {
		return appErrors.ValidationError("Reset code is invalid or has expired")
	}

	acc, ok := p.accounts[key]
	if !ok {
		return appErrors.NotFoundError("Account not found")
	}

	acc.passwordHash = hash
	delete(p.resets, key)

	// a password change ends the session of that account
	if p.current != nil && p.current.uid == acc.profile.UID {
		p.current = nil
	}

	return nil
}

func (p *LocalProvider) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.currentAccountLocked()
	if acc == nil {
		return nil, appErrors.UnauthorizedError("No user logged in")
	}

	if update.DisplayName != nil {
		acc.profile.DisplayName = *update.DisplayName
	}
	if update.PhotoURL != nil {
		acc.profile.PhotoURL = *update.PhotoURL
	}

	profile := acc.profile
	return &profile, nil
}

func (p *LocalProvider) CurrentUser() *models.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.currentAccountLocked()
	if acc == nil {
		return nil
	}

	profile := acc.profile
	return &profile
}

func (p *LocalProvider) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentAccountLocked() == nil {
		return ""
	}

	return p.current.id
}

// currentAccountLocked expires a lapsed session as a side effect.
func (p *LocalProvider) currentAccountLocked() *account {
	if p.current == nil {
		return nil
	}

	if !p.now().Before(p.current.expiresAt) {
		p.current = nil
		return nil
	}

	for _, acc := range p.accounts {
		if acc.profile.UID == p.current.uid {
			return acc
		}
	}

	return nil
}

func (p *LocalProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	acc := p.currentAccountLocked()
	if acc == nil {
		p.mu.Unlock()
		return "", nil
	}
	sessionID := p.current.id
	profile := acc.profile
	p.mu.Unlock()

	now := p.now()
	claims := &models.Claims{
		UID:       profile.UID,
		Email:     profile.Email,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.UID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.jwtKey)
	if err != nil {
		return "", appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return signed, nil
}

// Verify accepts only tokens signed by this provider for the live session.
func (p *LocalProvider) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtKey, nil
	}, jwt.WithTimeFunc(p.now))

	if err != nil || !token.Valid {
		return nil, appErrors.UnauthorizedError("Invalid or expired token").WithError(err)
	}

	if claims.SessionID == "" || claims.SessionID != p.SessionID() {
		return nil, appErrors.UnauthorizedError("Session has ended. Please login again.")
	}

	return claims, nil
}

package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/identity"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/go-playground/validator/v10"
)

// AuthState mirrors the operator's primary session.
type AuthState struct {
	User            *models.Profile `json:"user"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	Loading         bool            `json:"loading"`
	Error           string          `json:"error,omitempty"`
}

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	// Logout ends the session and always drops its products-area grant.
	Logout(ctx context.Context) error
	ResetPassword(ctx context.Context, req *models.PasswordResetRequest) (*models.PasswordResetResponse, error)
	UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error)
	State() AuthState
}

// SessionGate is the part of the products-area gate tied to sign-out.
type SessionGate interface {
	Clear(ctx context.Context, session string) error
}

type authService struct {
	provider identity.Provider
	gate     SessionGate
	tokenTTL time.Duration
	validate *validator.Validate

	mu      sync.Mutex
	loading bool
	err     string
}

func NewAuthService(provider identity.Provider, gate SessionGate, tokenTTL time.Duration) AuthService {
	return &authService{
		provider: provider,
		gate:     gate,
		tokenTTL: tokenTTL,
		validate: utils.NewValidator(),
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.begin()

	if err := utils.ValidateStruct(s.validate, req); err != nil {
		return nil, s.fail(err)
	}

	profile, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(err)
	}

	resp, err := s.issue(ctx, profile)
	if err != nil {
		return nil, s.fail(err)
	}

	s.settle()
	middleware.LoggerFromContext(ctx).Info("Operator signed in", slog.String("uid", profile.UID))

	return resp, nil
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	s.begin()

	if err := utils.ValidateStruct(s.validate, req); err != nil {
		return nil, s.fail(err)
	}

	profile, err := s.provider.SignUp(ctx, req.Email, req.Password, utils.Sanitize(req.DisplayName))
	if err != nil {
		return nil, s.fail(err)
	}

	resp, err := s.issue(ctx, profile)
	if err != nil {
		return nil, s.fail(err)
	}

	s.settle()

	return resp, nil
}

func (s *authService) issue(ctx context.Context, profile *models.Profile) (*models.LoginResponse, error) {
	token, err := s.provider.Token(ctx)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
		User:      *profile,
	}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	logger := middleware.LoggerFromContext(ctx)
	session := s.provider.SessionID()

	signOutErr := s.provider.SignOut(ctx)

	if err := s.gate.Clear(ctx, session); err != nil {
		logger.Error("Failed to clear products-area grant", slog.String("error", err.Error()))
		if signOutErr == nil {
			return s.fail(err)
		}
	}

	if signOutErr != nil {
		return s.fail(signOutErr)
	}

	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()

	logger.Info("Operator signed out")

	return nil
}

// ResetPassword mails a reset code when req carries none and otherwise
// redeems it for the new password.
func (s *authService) ResetPassword(ctx context.Context, req *models.PasswordResetRequest) (*models.PasswordResetResponse, error) {
	s.begin()

	if err := utils.ValidateStruct(s.validate, req); err != nil {
		return nil, s.fail(err)
	}

	if req.Code == "" {
		if err := s.provider.SendPasswordReset(ctx, req.Email); err != nil {
			return nil, s.fail(err)
		}

		s.settle()

		return &models.PasswordResetResponse{Message: "If the address is registered, a reset code has been emailed"}, nil
	}

	if req.NewPassword == "" {
		return nil, s.fail(appErrors.AddValidationError("newPassword", "required together with a reset code"))
	}

	if err := s.provider.ConfirmPasswordReset(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		return nil, s.fail(err)
	}

	s.settle()

	return &models.PasswordResetResponse{Message: "Password updated. Please sign in again."}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error) {
	s.begin()

	if err := utils.ValidateStruct(s.validate, update); err != nil {
		return nil, s.fail(err)
	}

	if update.DisplayName != nil {
		name := utils.Sanitize(*update.DisplayName)
		update.DisplayName = &name
	}

	profile, err := s.provider.UpdateProfile(ctx, *update)
	if err != nil {
		return nil, s.fail(err)
	}

	s.settle()

	return profile, nil
}

func (s *authService) State() AuthState {
	user := s.provider.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()

	return AuthState{
		User:            user,
		IsAuthenticated: user != nil,
		Loading:         s.loading,
		Error:           s.err,
	}
}

func (s *authService) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *authService) settle() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *authService) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	s.err = failureMessage(err)
	s.mu.Unlock()

	return err
}

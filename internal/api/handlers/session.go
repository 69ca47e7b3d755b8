package handlers

import (
	"log/slog"
	"net/http"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils"
	"github.com/clothingmenvy-dot/menvy-client/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SessionHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewSessionHandler(authService service.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService, validator: utils.NewValidator()}
}

// Login godoc
//	@Summary		Sign in
//	@Description	Signs the operator in against the identity provider and returns a bearer token.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			credentials body models.LoginRequest true "Credentials"
//	@Success		200 {object} models.LoginResponse "Signed in"
//	@Failure		400 {object} response.ErrorResponse "Validation error"
//	@Failure		401 {object} response.ErrorResponse "Invalid email or password"
//	@Failure		429 {object} response.ErrorResponse "Too many sign-in attempts"
//	@Router			/session/login [post]
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Operator signed in", slog.String("uid", resp.User.UID))
		response.Success(w, http.StatusOK, resp)

	}
}

// Register godoc
//	@Summary		Create an operator account and sign in
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			account body models.RegisterRequest true "New account"
//	@Success		201 {object} models.LoginResponse "Registered and signed in"
//	@Failure		400 {object} response.ErrorResponse "Validation error or email taken"
//	@Router			/session/register [post]
func (h *SessionHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("Registration failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Operator registered", slog.String("uid", resp.User.UID))
		response.Success(w, http.StatusCreated, resp)

	}
}

// Logout godoc
//	@Summary		Sign out and clear the products-area grant
//	@Tags			Session
//	@Success		204 "Signed out"
//	@Failure		401 {object} response.ErrorResponse "Authentication required"
//	@Security		BearerAuth
//	@Router			/session/logout [post]
func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.authService.Logout(r.Context()); err != nil {
			logger.Error("Logout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Operator signed out")
		response.NoContent(w)

	}
}

// ResetPassword mails a reset code when the body carries only an email and
// redeems it when a code and new password are included.
//
//	@Summary		Request or redeem a password reset
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			reset body models.PasswordResetRequest true "Reset request"
//	@Success		200 {object} models.PasswordResetResponse "Accepted"
//	@Failure		400 {object} response.ErrorResponse "Invalid or expired code"
//	@Failure		503 {object} response.ErrorResponse "Mail delivery is not configured"
//	@Router			/session/password-reset [post]
func (h *SessionHandler) ResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PasswordResetRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.ResetPassword(r.Context(), &req)
		if err != nil {
			logger.Warn("Password reset failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)

	}
}

// Profile godoc
//	@Summary		Signed-in operator profile
//	@Tags			Session
//	@Produce		json
//	@Success		200 {object} models.Profile "Profile"
//	@Failure		401 {object} response.ErrorResponse "Authentication required"
//	@Security		BearerAuth
//	@Router			/session/profile [get]
func (h *SessionHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state := h.authService.State()
		if state.User == nil {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		response.Success(w, http.StatusOK, state.User)

	}
}

// UpdateProfile godoc
//	@Summary		Update display name or photo
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			profile body models.ProfileUpdate true "Changed fields"
//	@Success		200 {object} models.Profile "Updated profile"
//	@Failure		400 {object} response.ErrorResponse "Validation error"
//	@Security		BearerAuth
//	@Router			/session/profile [patch]
func (h *SessionHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ProfileUpdate
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		profile, err := h.authService.UpdateProfile(r.Context(), &req)
		if err != nil {
			logger.Warn("Profile update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)

	}
}

// State godoc
//	@Summary		Current session state
//	@Tags			Session
//	@Produce		json
//	@Success		200 {object} services.AuthState "Session state"
//	@Failure		401 {object} response.ErrorResponse "Authentication required"
//	@Security		BearerAuth
//	@Router			/session/state [get]
func (h *SessionHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.authService.State())
	}
}

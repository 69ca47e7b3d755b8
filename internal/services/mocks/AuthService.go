package mocks

import (
	context "context"

	models "github.com/clothingmenvy-dot/menvy-client/internal/models"
	service "github.com/clothingmenvy-dot/menvy-client/internal/services"
	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, req
func (_m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	return r0, ret.Error(1)
}

// Register provides a mock function with given fields: ctx, req
func (_m *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	return r0, ret.Error(1)
}

// Logout provides a mock function with given fields: ctx
func (_m *AuthService) Logout(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

// ResetPassword provides a mock function with given fields: ctx, req
func (_m *AuthService) ResetPassword(ctx context.Context, req *models.PasswordResetRequest) (*models.PasswordResetResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.PasswordResetResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PasswordResetResponse)
	}

	return r0, ret.Error(1)
}

// UpdateProfile provides a mock function with given fields: ctx, update
func (_m *AuthService) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error) {
	ret := _m.Called(ctx, update)

	var r0 *models.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Profile)
	}

	return r0, ret.Error(1)
}

// State provides a mock function with no fields
func (_m *AuthService) State() service.AuthState {
	ret := _m.Called()

	return ret.Get(0).(service.AuthState)
}

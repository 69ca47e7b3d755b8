package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// RateLimitRepository is a mock type for the RateLimitRepository type
type RateLimitRepository struct {
	mock.Mock
}

// CheckSignInRateLimit provides a mock function with given fields: ctx, email
func (_m *RateLimitRepository) CheckSignInRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	ret := _m.Called(ctx, email)

	return ret.Bool(0), ret.Int(1), ret.Int(2), ret.Error(3)
}

// ResetSignInAttempts provides a mock function with given fields: ctx, email
func (_m *RateLimitRepository) ResetSignInAttempts(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)

	return ret.Error(0)
}

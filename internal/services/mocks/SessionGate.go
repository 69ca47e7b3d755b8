package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// SessionGate is a mock type for the SessionGate type
type SessionGate struct {
	mock.Mock
}

// Clear provides a mock function with given fields: ctx, session
func (_m *SessionGate) Clear(ctx context.Context, session string) error {
	ret := _m.Called(ctx, session)

	return ret.Error(0)
}

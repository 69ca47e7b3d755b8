package mocks

import (
	context "context"

	models "github.com/clothingmenvy-dot/menvy-client/internal/models"
	store "github.com/clothingmenvy-dot/menvy-client/internal/store"
	mock "github.com/stretchr/testify/mock"
)

// Editor is a mock type for the Editor type
type Editor[T models.Record, D any] struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *Editor[T, D]) List(ctx context.Context) ([]T, error) {
	ret := _m.Called(ctx)

	var r0 []T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *Editor[T, D]) Get(ctx context.Context, id string) (T, error) {
	ret := _m.Called(ctx, id)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, draft
func (_m *Editor[T, D]) Create(ctx context.Context, draft D) (T, error) {
	ret := _m.Called(ctx, draft)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, draft
func (_m *Editor[T, D]) Update(ctx context.Context, id string, draft D) (T, error) {
	ret := _m.Called(ctx, id, draft)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Remove provides a mock function with given fields: ctx, id
func (_m *Editor[T, D]) Remove(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// Snapshot provides a mock function with no fields
func (_m *Editor[T, D]) Snapshot() store.State[T] {
	ret := _m.Called()

	return ret.Get(0).(store.State[T])
}

// Find provides a mock function with given fields: id
func (_m *Editor[T, D]) Find(id string) (T, bool) {
	ret := _m.Called(id)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Bool(1)
}

// ClearError provides a mock function with no fields
func (_m *Editor[T, D]) ClearError() {
	_m.Called()
}

package mocks

import (
	context "context"

	models "github.com/clothingmenvy-dot/menvy-client/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// Resource is a mock type for the Resource type
type Resource[T models.Record] struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *Resource[T]) List(ctx context.Context) ([]T, error) {
	ret := _m.Called(ctx)

	var r0 []T
	if rf, ok := ret.Get(0).(func(context.Context) []T); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	ret := _m.Called(ctx, id)

	var r0 T
	if rf, ok := ret.Get(0).(func(context.Context, string) T); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, payload
func (_m *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	ret := _m.Called(ctx, payload)

	var r0 T
	if rf, ok := ret.Get(0).(func(context.Context, any) T); ok {
		r0 = rf(ctx, payload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, payload
func (_m *Resource[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	ret := _m.Called(ctx, id, payload)

	var r0 T
	if rf, ok := ret.Get(0).(func(context.Context, string, any) T); ok {
		r0 = rf(ctx, id, payload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *Resource[T]) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

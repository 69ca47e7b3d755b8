package mocks

import (
	context "context"

	models "github.com/clothingmenvy-dot/menvy-client/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// DashboardService is a mock type for the DashboardService type
type DashboardService struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *DashboardService) Load(ctx context.Context) (models.DashboardView, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(models.DashboardView), ret.Error(1)
}

// View provides a mock function with no fields
func (_m *DashboardService) View() models.DashboardView {
	ret := _m.Called()

	return ret.Get(0).(models.DashboardView)
}

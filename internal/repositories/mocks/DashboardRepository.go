package mocks

import (
	context "context"

	models "github.com/clothingmenvy-dot/menvy-client/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// DashboardRepository is a mock type for the DashboardRepository type
type DashboardRepository struct {
	mock.Mock
}

// GetSummary provides a mock function with given fields: ctx
func (_m *DashboardRepository) GetSummary(ctx context.Context) (*models.DashboardStats, error) {
	ret := _m.Called(ctx)

	var r0 *models.DashboardStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DashboardStats)
	}

	return r0, ret.Error(1)
}

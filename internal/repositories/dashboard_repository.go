package repository

import (
	"context"
	"fmt"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	"github.com/clothingmenvy-dot/menvy-client/pkg/backend"
)

type DashboardRepository interface {
	GetSummary(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardRepository struct {
	client backend.Client
}

func NewDashboardRepo(client backend.Client) DashboardRepository {
	return &dashboardRepository{client: client}
}

func (r *dashboardRepository) GetSummary(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := r.client.Get(ctx, "/dashboard", stats); err != nil {
		return nil, fmt.Errorf("fetching dashboard summary: %w", err)
	}

	if stats.MonthlyData == nil {
		stats.MonthlyData = []models.MonthlyPoint{}
	}

	return stats, nil
}

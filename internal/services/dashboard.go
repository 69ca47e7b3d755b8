package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/clothingmenvy-dot/menvy-client/internal/api/middleware"
	"github.com/clothingmenvy-dot/menvy-client/internal/cache"
	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	"github.com/clothingmenvy-dot/menvy-client/internal/models"
	repository "github.com/clothingmenvy-dot/menvy-client/internal/repositories"
	"github.com/shopspring/decimal"
)

// SummaryKey is where the backend dashboard summary is cached.
var SummaryKey = cache.Key(cache.DashboardKeyPrefix, "summary")

type DashboardService interface {
	// Load computes a fresh view from the configured source.
	Load(ctx context.Context) (models.DashboardView, error)
	// View returns the last loaded view with the current load state.
	View() models.DashboardView
}

type dashboardService struct {
	source string
	repo   repository.DashboardRepository
	cache  cache.Cache
	ttl    time.Duration
	dir    Directory

	mu     sync.Mutex
	view   models.DashboardView
	issued uint64
}

// NewDashboardService reads every figure from one source: the backend summary
// when cfg.Source is remote, the local slices when it is local.
func NewDashboardService(cfg config.Dashboard, repo repository.DashboardRepository, store cache.Cache, dir Directory) DashboardService {
	return &dashboardService{
		source: cfg.Source,
		repo:   repo,
		cache:  store,
		ttl:    cfg.CacheTTL,
		dir:    dir,
		view: models.DashboardView{
			Source: cfg.Source,
			Stats:  models.DashboardStats{MonthlyData: []models.MonthlyPoint{}},
		},
	}
}

func (s *dashboardService) Load(ctx context.Context) (models.DashboardView, error) {
	s.mu.Lock()
	s.issued++
	ticket := s.issued
	s.view.Loading = true
	s.view.Error = ""
	s.mu.Unlock()

	var (
		stats *models.DashboardStats
		err   error
	)

	if s.source == config.DashboardSourceLocal {
		stats = Aggregate(s.dir.Products(), s.dir.Sellers(), s.dir.Sales(), s.dir.Purchases())
	} else {
		stats, err = s.remote(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.issued {
		middleware.LoggerFromContext(ctx).Warn("Discarded stale dashboard load")
		return s.view, err
	}

	s.view.Loading = false
	if err != nil {
		s.view.Error = failureMessage(err)
		return s.view, err
	}

	s.view.Stats = *stats

	return s.view, nil
}

func (s *dashboardService) View() models.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

func (s *dashboardService) remote(ctx context.Context) (*models.DashboardStats, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := SummaryKey

	if s.cache != nil {
		var cached models.DashboardStats
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("Dashboard cache read failed", slog.String("error", err.Error()))
		} else if found {
			return &cached, nil
		}
	}

	stats, err := s.repo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, s.ttl); err != nil {
			logger.Warn("Dashboard cache write failed", slog.String("error", err.Error()))
		}
	}

	return stats, nil
}

// evictSummary returns the hook sales and purchases run after a change, so
// the next remote load reads totals that include it. A nil store disables it.
func evictSummary(store cache.Cache) func(ctx context.Context) {
	if store == nil {
		return nil
	}

	return func(ctx context.Context) {
		if err := store.Delete(ctx, SummaryKey); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Dashboard cache eviction failed", slog.String("error", err.Error()))
		}
	}
}

// Aggregate derives dashboard figures from local collections. Revenue is the
// sum of sale totals, profit is revenue less purchase totals, and the monthly
// series is keyed by the YYYY-MM of each record's creation time.
func Aggregate(products []models.Product, sellers []models.Seller, sales []models.Sale, purchases []models.Purchase) *models.DashboardStats {
	stats := &models.DashboardStats{
		TotalProducts:  len(products),
		TotalSellers:   len(sellers),
		TotalSales:     len(sales),
		TotalPurchases: len(purchases),
		TotalRevenue:   decimal.Zero,
		TotalProfit:    decimal.Zero,
	}

	months := make(map[string]*models.MonthlyPoint)
	point := func(t time.Time) *models.MonthlyPoint {
		key := t.Format("2006-01")
		p, ok := months[key]
		if !ok {
			p = &models.MonthlyPoint{Month: key, Sales: decimal.Zero, Purchases: decimal.Zero}
			months[key] = p
		}
		return p
	}

	spent := decimal.Zero

	for _, sale := range sales {
		stats.TotalRevenue = stats.TotalRevenue.Add(sale.Total)
		if !sale.CreatedAt.IsZero() {
			p := point(sale.CreatedAt)
			p.Sales = p.Sales.Add(sale.Total)
		}
	}

	for _, purchase := range purchases {
		spent = spent.Add(purchase.Total)
		if !purchase.CreatedAt.IsZero() {
			p := point(purchase.CreatedAt)
			p.Purchases = p.Purchases.Add(purchase.Total)
		}
	}

	stats.TotalProfit = stats.TotalRevenue.Sub(spent)

	stats.MonthlyData = make([]models.MonthlyPoint, 0, len(months))
	for _, p := range months {
		stats.MonthlyData = append(stats.MonthlyData, *p)
	}
	sort.Slice(stats.MonthlyData, func(i, j int) bool {
		return stats.MonthlyData[i].Month < stats.MonthlyData[j].Month
	})

	return stats
}

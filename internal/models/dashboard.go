package models

import "github.com/shopspring/decimal"

type MonthlyPoint struct {
	Month     string          `json:"month"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

type DashboardStats struct {
	TotalProducts  int             `json:"totalProducts"`
	TotalSellers   int             `json:"totalSellers"`
	TotalSales     int             `json:"totalSales"`
	TotalPurchases int             `json:"totalPurchases"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	MonthlyData    []MonthlyPoint  `json:"monthlyData"`
}

// DashboardView is one rendered dashboard; Source names where every figure came from.
type DashboardView struct {
	Source  string         `json:"source"`
	Stats   DashboardStats `json:"stats"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

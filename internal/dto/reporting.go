package dto

import "github.com/shopspring/decimal"

// MonthlyTotalDTO is one bar of the dashboard's monthly chart.
type MonthlyTotalDTO struct {
	Label string          `json:"label"` // e.g. "August 2026"
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PartyTotalDTO is one row of the dashboard's top-parties list.
type PartyTotalDTO struct {
	PartyName string          `json:"partyName"`
	Count     int64           `json:"count"`
	Total     decimal.Decimal `json:"total"`
}

// DashboardStatsResponse aggregates the dashboard figures.
type DashboardStatsResponse struct {
	CountThisMonth   int64             `json:"countThisMonth"`
	TotalThisMonth   decimal.Decimal   `json:"totalThisMonth"`
	AverageThisMonth decimal.Decimal   `json:"averageThisMonth"`
	MonthlyTotals    []MonthlyTotalDTO `json:"monthlyTotals"`
	TopParties       []PartyTotalDTO   `json:"topParties"`
}

package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyAggregate sums credits and depreciation recognized in one calendar month.
type MonthlyAggregate struct {
	Month        string          `json:"month"` // YYYY-MM
	Credits      decimal.Decimal `json:"credits"`
	Depreciation decimal.Decimal `json:"depreciation"`
}

// DashboardSummary aggregates the whole asset register.
type DashboardSummary struct {
	AssetCount            int                 `json:"assetCount"`
	AssetsByStatus        map[AssetStatus]int `json:"assetsByStatus"`
	TotalAcquisitionValue decimal.Decimal     `json:"totalAcquisitionValue"`
	TotalCurrentValue     decimal.Decimal     `json:"totalCurrentValue"`
	TotalCredits          decimal.Decimal     `json:"totalCredits"`
	TotalDepreciation     decimal.Decimal     `json:"totalDepreciation"`
	DisposalCount         int                 `json:"disposalCount"`
	TotalGainOrLoss       decimal.Decimal     `json:"totalGainOrLoss"`
	Monthly               []MonthlyAggregate  `json:"monthly"`
}

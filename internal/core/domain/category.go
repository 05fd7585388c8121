package domain

import "github.com/shopspring/decimal"

// Category is a depreciation policy template shared by many assets.
type Category struct {
	CategoryID       string          `json:"categoryID"`
	Name             string          `json:"name"`
	AnnualRate       decimal.Decimal `json:"annualRate"` // percent per year
	UsefulLifeMonths int             `json:"usefulLifeMonths"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}

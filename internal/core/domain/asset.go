package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive           AssetStatus = "ACTIVE"
	AssetUnderMaintenance AssetStatus = "UNDER_MAINTENANCE"
	AssetWrittenOff       AssetStatus = "WRITTEN_OFF"
)

// IsValid reports whether s is a known status.
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetActive, AssetUnderMaintenance, AssetWrittenOff:
		return true
	}
	return false
}

// TaxComponents holds the tax amounts paid on acquisition.
type TaxComponents struct {
	IPI    decimal.Decimal `json:"ipi"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	ICMS   decimal.Decimal `json:"icms"`
}

// Total returns the sum of all tax components.
func (t TaxComponents) Total() decimal.Decimal {
	return t.IPI.Add(t.PIS).Add(t.COFINS).Add(t.ICMS)
}

// Asset represents a registered fixed asset.
// TotalValue is the fiscal (invoice) value and never changes after registration;
// reassessments only touch MarketValue.
type Asset struct {
	AssetID          string           `json:"assetID"`
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	AcquisitionDate  time.Time        `json:"acquisitionDate"`
	InvoiceNumber    string           `json:"invoiceNumber"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	Taxes            TaxComponents    `json:"taxes"`
	MarketValue      *decimal.Decimal `json:"marketValue,omitempty"`
	LastReassessedAt *time.Time       `json:"lastReassessedAt,omitempty"`
	CategoryID       string           `json:"categoryID"`
	Sector           string           `json:"sector"`
	Location         string           `json:"location"`
	Status           AssetStatus      `json:"status"`
	AuditFields
}

// CurrentValue returns the reassessed market value, or the acquisition value when
// the asset was never reassessed.
func (a Asset) CurrentValue() decimal.Decimal {
	if a.MarketValue != nil {
		return *a.MarketValue
	}
	return a.TotalValue
}

// IsWrittenOff reports whether the asset has been disposed of.
func (a Asset) IsWrittenOff() bool {
	return a.Status == AssetWrittenOff
}

// AssetFilter narrows asset listings. Zero values match everything; a zero
// Limit returns all matching assets.
type AssetFilter struct {
	Status     AssetStatus
	CategoryID string
	Limit      int
	Offset     int
}

package dto

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxComponentsRequest carries the acquisition taxes paid on an asset.
type TaxComponentsRequest struct {
	IPI    decimal.Decimal `json:"ipi"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	ICMS   decimal.Decimal `json:"icms"`
}

// ToDomain converts the request into domain tax components.
func (t TaxComponentsRequest) ToDomain() domain.TaxComponents {
	return domain.TaxComponents{IPI: t.IPI, PIS: t.PIS, COFINS: t.COFINS, ICMS: t.ICMS}
}

// CreateAssetRequest defines the data needed to register a new asset.
type CreateAssetRequest struct {
	Code            string               `json:"code" binding:"required,max=64"`
	Name            string               `json:"name" binding:"required,max=200"`
	Description     string               `json:"description"`
	AcquisitionDate string               `json:"acquisitionDate" binding:"required,datetime=2006-01-02"`
	InvoiceNumber   string               `json:"invoiceNumber"`
	TotalValue      *decimal.Decimal     `json:"totalValue" binding:"required"`
	Taxes           TaxComponentsRequest `json:"taxes"`
	CategoryID      string               `json:"categoryID" binding:"required"`
	Sector          string               `json:"sector"`
	Location        string               `json:"location"`
}

// UpdateAssetRequest defines the descriptive fields that may change after registration.
// Acquisition value and date are immutable.
type UpdateAssetRequest struct {
	Name          *string               `json:"name" binding:"omitempty,max=200"`
	Description   *string               `json:"description"`
	InvoiceNumber *string               `json:"invoiceNumber"`
	Taxes         *TaxComponentsRequest `json:"taxes"`
	CategoryID    *string               `json:"categoryID"`
	Sector        *string               `json:"sector"`
	Location      *string               `json:"location"`
}

// ReassessAssetRequest records a new market value for an asset.
type ReassessAssetRequest struct {
	MarketValue  *decimal.Decimal `json:"marketValue" binding:"required"`
	ReassessedAt string           `json:"reassessedAt" binding:"omitempty,datetime=2006-01-02"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE UNDER_MAINTENANCE WRITTEN_OFF"`
	CategoryID string `form:"categoryID"`
	Limit      int    `form:"limit,default=50" binding:"min=0,max=500"`
	Offset     int    `form:"offset,default=0" binding:"min=0"`
}

// ToFilter converts the query parameters into a repository filter.
func (p ListAssetsParams) ToFilter() domain.AssetFilter {
	return domain.AssetFilter{
		Status:     domain.AssetStatus(p.Status),
		CategoryID: p.CategoryID,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID          string               `json:"assetID"`
	Code             string               `json:"code"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	AcquisitionDate  string               `json:"acquisitionDate"`
	InvoiceNumber    string               `json:"invoiceNumber"`
	TotalValue       decimal.Decimal      `json:"totalValue"`
	Taxes            domain.TaxComponents `json:"taxes"`
	MarketValue      *decimal.Decimal     `json:"marketValue,omitempty"`
	CurrentValue     decimal.Decimal      `json:"currentValue"`
	LastReassessedAt *time.Time           `json:"lastReassessedAt,omitempty"`
	CategoryID       string               `json:"categoryID"`
	Sector           string               `json:"sector"`
	Location         string               `json:"location"`
	Status           domain.AssetStatus   `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy    string               `json:"lastUpdatedBy"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:          a.AssetID,
		Code:             a.Code,
		Name:             a.Name,
		Description:      a.Description,
		AcquisitionDate:  a.AcquisitionDate.Format(DateLayout),
		InvoiceNumber:    a.InvoiceNumber,
		TotalValue:       a.TotalValue,
		Taxes:            a.Taxes,
		MarketValue:      a.MarketValue,
		CurrentValue:     a.CurrentValue(),
		LastReassessedAt: a.LastReassessedAt,
		CategoryID:       a.CategoryID,
		Sector:           a.Sector,
		Location:         a.Location,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
		LastUpdatedAt:    a.LastUpdatedAt,
		LastUpdatedBy:    a.LastUpdatedBy,
	}
}

// ListAssetsResponse wraps the list of assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ToListAssetsResponse converts a slice of domain.Asset to the list response.
func ToListAssetsResponse(assets []domain.Asset) ListAssetsResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return ListAssetsResponse{Assets: res}
}

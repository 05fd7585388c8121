package dto

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a depreciation category.
type CreateCategoryRequest struct {
	Name             string           `json:"name" binding:"required,max=120"`
	AnnualRate       *decimal.Decimal `json:"annualRate" binding:"required"`
	UsefulLifeMonths int              `json:"usefulLifeMonths" binding:"required,min=1,max=1200"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name             *string          `json:"name" binding:"omitempty,max=120"`
	AnnualRate       *decimal.Decimal `json:"annualRate"`
	UsefulLifeMonths *int             `json:"usefulLifeMonths" binding:"omitempty,min=1,max=1200"`
	IsActive         *bool            `json:"isActive"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	IncludeInactive bool `form:"includeInactive"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID       string          `json:"categoryID"`
	Name             string          `json:"name"`
	AnnualRate       decimal.Decimal `json:"annualRate"`
	UsefulLifeMonths int             `json:"usefulLifeMonths"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       c.CategoryID,
		Name:             c.Name,
		AnnualRate:       c.AnnualRate,
		UsefulLifeMonths: c.UsefulLifeMonths,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		CreatedBy:        c.CreatedBy,
		LastUpdatedAt:    c.LastUpdatedAt,
		LastUpdatedBy:    c.LastUpdatedBy,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: res}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, opts ...Option) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

var maxRate = decimal.NewFromInt(100)

func validateAnnualRate(rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThan(maxRate) {
		return apperrors.NewValidationError("annualRate", "must be greater than 0 and at most 100")
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	if req.AnnualRate == nil {
		return nil, apperrors.NewValidationError("annualRate", "is required")
	}
	if err := validateAnnualRate(*req.AnnualRate); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	category := domain.Category{
		CategoryID:       uuid.NewString(),
		Name:             name,
		AnnualRate:       *req.AnnualRate,
		UsefulLifeMonths: req.UsefulLifeMonths,
		IsActive:         true,
		AuditFields:      newAudit(userID, s.Now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.logRepoError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("name", name))
	return &category, nil
}

func (s *categoryService) ResolveCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to resolve category", slog.String("category_id", categoryID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category not found: %w", err)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.ResolveCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		if !strings.EqualFold(name, category.Name) {
			if err := s.ensureNameFree(ctx, name, categoryID); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if req.AnnualRate != nil {
		if err := validateAnnualRate(*req.AnnualRate); err != nil {
			return nil, err
		}
		category.AnnualRate = *req.AnnualRate
	}
	if req.UsefulLifeMonths != nil {
		category.UsefulLifeMonths = *req.UsefulLifeMonths
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = s.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.logRepoError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, userID string) error {
	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, userID, s.Now()); err != nil {
		s.logRepoError(ctx, err, "Failed to deactivate category", slog.String("category_id", categoryID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category not found: %w", err)
		}
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	s.LogInfo(ctx, "Category deactivated", slog.String("category_id", categoryID))
	return nil
}

// ensureNameFree fails with ErrDuplicate when another category already uses name.
func (s *categoryService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.categoryRepo.FindCategoryByName(ctx, name)
	switch {
	case err == nil && existing.CategoryID != selfID:
		return fmt.Errorf("category %q: %w", name, apperrors.ErrDuplicate)
	case err == nil, errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check category name", slog.String("name", name))
		return fmt.Errorf("failed to check category name: %w", err)
	}
}

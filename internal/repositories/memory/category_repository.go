package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func (s *Store) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.categories[categoryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := e.value
	return &c, nil
}

func (s *Store) FindCategoryByName(_ context.Context, name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.categories {
		if strings.EqualFold(e.value.Name, name) {
			c := e.value
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context, includeInactive bool) ([]domain.Category, error) {
	s.mu.RLock()
	categories := sortedValues(s.categories, func(c domain.Category) bool {
		return includeInactive || c.IsActive
	}, cloneCategory)
	s.mu.RUnlock()

	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *Store) SaveCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.CategoryID]; ok {
		return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, category.CategoryID)
	}
	if s.categoryNameTaken(category.Name, category.CategoryID) {
		return fmt.Errorf("%w: category named %s already exists", apperrors.ErrDuplicate, category.Name)
	}
	s.categories[category.CategoryID] = entry[domain.Category]{seq: s.next(), value: category}
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.categories[category.CategoryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if s.categoryNameTaken(category.Name, category.CategoryID) {
		return fmt.Errorf("%w: category named %s already exists", apperrors.ErrDuplicate, category.Name)
	}
	e.value = category
	s.categories[category.CategoryID] = e
	return nil
}

func (s *Store) DeactivateCategory(_ context.Context, categoryID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.categories[categoryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.value.IsActive = false
	e.value.LastUpdatedAt = now
	e.value.LastUpdatedBy = userID
	s.categories[categoryID] = e
	return nil
}

func (s *Store) categoryNameTaken(name, exceptID string) bool {
	for id, e := range s.categories {
		if id != exceptID && strings.EqualFold(e.value.Name, name) {
			return true
		}
	}
	return false
}

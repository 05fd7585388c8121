package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `category_id, name, annual_rate, useful_life_months, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(base BaseRepository) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: base}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return r.findOne(ctx, `category_id = $1`, categoryID)
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, `lower(name) = lower($1)`, name)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, where string, arg any) (*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM asset_categories WHERE `+where+`;`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapReadError(err, "category")
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM asset_categories WHERE is_active OR $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	categories := make([]domain.Category, 0, len(ms))
	for _, m := range ms {
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	query := `INSERT INTO asset_categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query,
		c.CategoryID, c.Name, c.AnnualRate, c.UsefulLifeMonths, c.IsActive,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "category "+c.Name)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	const query = `
		UPDATE asset_categories SET
			name = $2, annual_rate = $3, useful_life_months = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		c.CategoryID, c.Name, c.AnnualRate, c.UsefulLifeMonths, c.IsActive, c.LastUpdatedAt, c.LastUpdatedBy)
	return requireAffected(tag, err, "category "+c.Name)
}

func (r *PgxCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	const query = `
		UPDATE asset_categories SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, categoryID, now, userID)
	return requireAffected(tag, err, "category "+categoryID)
}

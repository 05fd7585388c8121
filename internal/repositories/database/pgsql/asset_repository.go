package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const assetColumns = `asset_id, code, name, description, acquisition_date, invoice_number, total_value,
	tax_ipi, tax_pis, tax_cofins, tax_icms, market_value, last_reassessed_at, category_id,
	sector, location, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(base BaseRepository) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: base}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	return r.findOne(ctx, `asset_id = $1`, assetID)
}

func (r *PgxAssetRepository) FindAssetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	return r.findOne(ctx, `lower(code) = lower($1)`, code)
}

func (r *PgxAssetRepository) findOne(ctx context.Context, where string, arg any) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE ` + where + `;`
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, mapReadError(err, "asset")
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves assets matching the filter, ordered by code.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + assetColumns + ` FROM assets`)
	if len(conds) > 0 {
		b.WriteString(` WHERE ` + strings.Join(conds, " AND "))
	}
	b.WriteString(` ORDER BY code`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}

	assets := make([]domain.Asset, 0, len(ms))
	for _, m := range ms {
		assets = append(assets, mapping.ToDomainAsset(m))
	}
	return assets, nil
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`

	_, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.Code, m.Name, m.Description, m.AcquisitionDate, m.InvoiceNumber, m.TotalValue,
		m.TaxIPI, m.TaxPIS, m.TaxCOFINS, m.TaxICMS, m.MarketValue, m.LastReassessedAt, m.CategoryID,
		m.Sector, m.Location, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "asset "+m.Code)
	}
	return nil
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	const query = `
		UPDATE assets SET
			code = $2, name = $3, description = $4, invoice_number = $5, market_value = $6,
			last_reassessed_at = $7, category_id = $8, sector = $9, location = $10, status = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.Code, m.Name, m.Description, m.InvoiceNumber, m.MarketValue,
		m.LastReassessedAt, m.CategoryID, m.Sector, m.Location, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return requireAffected(tag, err, "asset "+m.Code)
}

func (r *PgxAssetRepository) UpdateAssetStatus(ctx context.Context, assetID string, status domain.AssetStatus, userID string, now time.Time) error {
	return updateAssetStatus(ctx, r.Pool, assetID, string(status), userID, now)
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	return requireAffected(tag, err, "asset "+assetID)
}


package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const taxCreditColumns = `calculation_id, asset_id, base_value, granularity, start_date, params, schedules,
	total_credit, created_at, created_by, last_updated_at, last_updated_by`

type PgxTaxCreditRepository struct {
	BaseRepository
}

func newPgxTaxCreditRepository(base BaseRepository) portsrepo.TaxCreditRepositoryFacade {
	return &PgxTaxCreditRepository{BaseRepository: base}
}

var _ portsrepo.TaxCreditRepositoryFacade = (*PgxTaxCreditRepository)(nil)

func (r *PgxTaxCreditRepository) FindTaxCreditCalculationByID(ctx context.Context, calculationID string) (*domain.TaxCreditCalculation, error) {
	query := `SELECT ` + taxCreditColumns + ` FROM tax_credit_calculations WHERE calculation_id = $1;`
	rows, err := r.Pool.Query(ctx, query, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax credit calculation: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.TaxCreditCalculation])
	if err != nil {
		return nil, mapReadError(err, "tax credit calculation")
	}
	d, err := mapping.ToDomainTaxCredit(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxTaxCreditRepository) ListTaxCreditCalculationsByAsset(ctx context.Context, assetID string) ([]domain.TaxCreditCalculation, error) {
	query := `SELECT ` + taxCreditColumns + ` FROM tax_credit_calculations WHERE asset_id = $1 ORDER BY seq;`
	return r.list(ctx, query, assetID)
}

func (r *PgxTaxCreditRepository) ListTaxCreditCalculations(ctx context.Context) ([]domain.TaxCreditCalculation, error) {
	return r.list(ctx, `SELECT `+taxCreditColumns+` FROM tax_credit_calculations ORDER BY seq;`)
}

func (r *PgxTaxCreditRepository) list(ctx context.Context, query string, args ...any) ([]domain.TaxCreditCalculation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax credit calculations: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TaxCreditCalculation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tax credit calculations: %w", err)
	}
	calcs := make([]domain.TaxCreditCalculation, 0, len(ms))
	for _, m := range ms {
		d, err := mapping.ToDomainTaxCredit(m)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, d)
	}
	return calcs, nil
}

func (r *PgxTaxCreditRepository) SaveTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error {
	m, err := mapping.ToModelTaxCredit(calc)
	if err != nil {
		return err
	}
	query := `INSERT INTO tax_credit_calculations (` + taxCreditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err = r.Pool.Exec(ctx, query,
		m.CalculationID, m.AssetID, m.BaseValue, m.Granularity, m.StartDate, m.Params, m.Schedules,
		m.TotalCredit, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "tax credit calculation "+m.CalculationID)
	}
	return nil
}

func (r *PgxTaxCreditRepository) UpdateTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error {
	m, err := mapping.ToModelTaxCredit(calc)
	if err != nil {
		return err
	}
	const query = `
		UPDATE tax_credit_calculations SET
			base_value = $2, granularity = $3, start_date = $4, params = $5, schedules = $6,
			total_credit = $7, last_updated_at = $8, last_updated_by = $9
		WHERE calculation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CalculationID, m.BaseValue, m.Granularity, m.StartDate, m.Params, m.Schedules,
		m.TotalCredit, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return requireAffected(tag, err, "tax credit calculation "+m.CalculationID)
}

func (r *PgxTaxCreditRepository) DeleteTaxCreditCalculation(ctx context.Context, calculationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tax_credit_calculations WHERE calculation_id = $1;`, calculationID)
	return requireAffected(tag, err, "tax credit calculation "+calculationID)
}

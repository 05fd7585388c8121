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

const depreciationColumns = `calculation_id, asset_id, category_id, method, annual_rate, rate_overridden,
	residual_value, useful_life_months, asset_value, credit_total, tax_credit_calculation_id,
	depreciable_base, granularity, start_date, periods, total_depreciation, book_value, superseded,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxDepreciationRepository struct {
	BaseRepository
}

func newPgxDepreciationRepository(base BaseRepository) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{BaseRepository: base}
}

var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

func (r *PgxDepreciationRepository) FindDepreciationCalculationByID(ctx context.Context, calculationID string) (*domain.DepreciationCalculation, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_calculations WHERE calculation_id = $1;`
	rows, err := r.Pool.Query(ctx, query, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation calculation: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DepreciationCalculation])
	if err != nil {
		return nil, mapReadError(err, "depreciation calculation")
	}
	d, err := mapping.ToDomainDepreciation(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDepreciationRepository) ListDepreciationCalculationsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationCalculation, error) {
	query := `SELECT ` + depreciationColumns + ` FROM depreciation_calculations WHERE asset_id = $1 ORDER BY seq;`
	return r.list(ctx, query, assetID)
}

func (r *PgxDepreciationRepository) ListDepreciationCalculations(ctx context.Context) ([]domain.DepreciationCalculation, error) {
	return r.list(ctx, `SELECT `+depreciationColumns+` FROM depreciation_calculations ORDER BY seq;`)
}

func (r *PgxDepreciationRepository) list(ctx context.Context, query string, args ...any) ([]domain.DepreciationCalculation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list depreciation calculations: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DepreciationCalculation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan depreciation calculations: %w", err)
	}
	calcs := make([]domain.DepreciationCalculation, 0, len(ms))
	for _, m := range ms {
		d, err := mapping.ToDomainDepreciation(m)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, d)
	}
	return calcs, nil
}

// SaveDepreciationCalculation supersedes the asset's current calculation and
// inserts calc in a single transaction.
func (r *PgxDepreciationRepository) SaveDepreciationCalculation(ctx context.Context, calc domain.DepreciationCalculation) error {
	calc.Superseded = false
	m, err := mapping.ToModelDepreciation(calc)
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		const supersede = `
			UPDATE depreciation_calculations SET superseded = TRUE, last_updated_at = $2, last_updated_by = $3
			WHERE asset_id = $1 AND NOT superseded;
		`
		if _, err := tx.Exec(ctx, supersede, m.AssetID, m.CreatedAt, m.CreatedBy); err != nil {
			return fmt.Errorf("failed to supersede depreciation calculations: %w", err)
		}

		insert := `INSERT INTO depreciation_calculations (` + depreciationColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);`
		_, err := tx.Exec(ctx, insert,
			m.CalculationID, m.AssetID, m.CategoryID, m.Method, m.AnnualRate, m.RateOverridden,
			m.ResidualValue, m.UsefulLifeMonths, m.AssetValue, m.CreditTotal, m.TaxCreditCalculationID,
			m.DepreciableBase, m.Granularity, m.StartDate, m.Periods, m.TotalDepreciation, m.BookValue, m.Superseded,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "depreciation calculation "+m.CalculationID)
		}
		return nil
	})
}

func (r *PgxDepreciationRepository) DeleteDepreciationCalculation(ctx context.Context, calculationID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var assetID string
		var superseded bool
		err := tx.QueryRow(ctx,
			`DELETE FROM depreciation_calculations WHERE calculation_id = $1 RETURNING asset_id, superseded;`,
			calculationID,
		).Scan(&assetID, &superseded)
		if err != nil {
			return mapReadError(err, "depreciation calculation "+calculationID)
		}
		if superseded {
			return nil
		}

		const reinstate = `
			UPDATE depreciation_calculations SET superseded = FALSE
			WHERE calculation_id = (
				SELECT calculation_id FROM depreciation_calculations
				WHERE asset_id = $1 ORDER BY seq DESC LIMIT 1
			);
		`
		if _, err := tx.Exec(ctx, reinstate, assetID); err != nil {
			return fmt.Errorf("failed to reinstate depreciation calculation: %w", err)
		}
		return nil
	})
}

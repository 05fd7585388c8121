package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const maintenanceColumns = `maintenance_id, asset_id, description, cost, started_at, completed_at,
	previous_status, created_at, created_by, last_updated_at, last_updated_by`

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(base BaseRepository) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{BaseRepository: base}
}

var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

func nullTime(d domain.MaintenanceRecord) sql.NullTime {
	if d.CompletedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *d.CompletedAt, Valid: true}
}

func (r *PgxMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE maintenance_id = $1;`
	rows, err := r.Pool.Query(ctx, query, maintenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance record: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.MaintenanceRecord])
	if err != nil {
		return nil, mapReadError(err, "maintenance record")
	}
	d := mapping.ToDomainMaintenance(m)
	return &d, nil
}

// ListMaintenanceByAsset returns the asset's records, most recent start first.
func (r *PgxMaintenanceRepository) ListMaintenanceByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE asset_id = $1 ORDER BY started_at DESC;`
	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MaintenanceRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance records: %w", err)
	}
	records := make([]domain.MaintenanceRecord, 0, len(ms))
	for _, m := range ms {
		records = append(records, mapping.ToDomainMaintenance(m))
	}
	return records, nil
}

func (r *PgxMaintenanceRepository) StartMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := updateAssetStatus(ctx, tx, record.AssetID, string(domain.AssetUnderMaintenance), record.CreatedBy, record.CreatedAt); err != nil {
			return err
		}
		insert := `INSERT INTO maintenance_records (` + maintenanceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
		_, err := tx.Exec(ctx, insert,
			record.MaintenanceID, record.AssetID, record.Description, record.Cost, record.StartedAt, nullTime(record),
			string(record.PreviousStatus), record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "maintenance record "+record.MaintenanceID)
		}
		return nil
	})
}

func (r *PgxMaintenanceRepository) CompleteMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	previous := record.PreviousStatus
	if !previous.IsValid() || previous == domain.AssetUnderMaintenance {
		previous = domain.AssetActive
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM assets WHERE asset_id = $1 FOR UPDATE;`, record.AssetID).Scan(&status)
		if err != nil {
			return mapReadError(err, "asset "+record.AssetID)
		}
		if domain.AssetStatus(status) == domain.AssetWrittenOff {
			return fmt.Errorf("asset %s is written off: %w", record.AssetID, apperrors.ErrConflict)
		}
		const update = `
			UPDATE maintenance_records SET cost = $2, completed_at = $3, last_updated_at = $4, last_updated_by = $5
			WHERE maintenance_id = $1;
		`
		tag, err := tx.Exec(ctx, update,
			record.MaintenanceID, record.Cost, nullTime(record), record.LastUpdatedAt, record.LastUpdatedBy)
		if err := requireAffected(tag, err, "maintenance record "+record.MaintenanceID); err != nil {
			return err
		}
		return updateAssetStatus(ctx, tx, record.AssetID, string(previous), record.LastUpdatedBy, record.LastUpdatedAt)
	})
}

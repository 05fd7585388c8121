package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const disposalColumns = `disposal_id, asset_id, kind, invoice_number, sale_value, sale_date, registered_at,
	previous_status, settlement, created_at, created_by, last_updated_at, last_updated_by`

type PgxDisposalRepository struct {
	BaseRepository
}

func newPgxDisposalRepository(base BaseRepository) portsrepo.DisposalRepositoryFacade {
	return &PgxDisposalRepository{BaseRepository: base}
}

var _ portsrepo.DisposalRepositoryFacade = (*PgxDisposalRepository)(nil)

func (r *PgxDisposalRepository) FindDisposalByID(ctx context.Context, disposalID string) (*domain.DisposalRecord, error) {
	return r.findOne(ctx, `disposal_id = $1`, disposalID)
}

func (r *PgxDisposalRepository) FindDisposalByAsset(ctx context.Context, assetID string) (*domain.DisposalRecord, error) {
	return r.findOne(ctx, `asset_id = $1`, assetID)
}

func (r *PgxDisposalRepository) findOne(ctx context.Context, where string, arg any) (*domain.DisposalRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+disposalColumns+` FROM disposals WHERE `+where+`;`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query disposal: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DisposalRecord])
	if err != nil {
		return nil, mapReadError(err, "disposal")
	}
	d, err := mapping.ToDomainDisposal(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDisposalRepository) ListDisposals(ctx context.Context) ([]domain.DisposalRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+disposalColumns+` FROM disposals ORDER BY registered_at;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list disposals: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DisposalRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan disposals: %w", err)
	}
	disposals := make([]domain.DisposalRecord, 0, len(ms))
	for _, m := range ms {
		d, err := mapping.ToDomainDisposal(m)
		if err != nil {
			return nil, err
		}
		disposals = append(disposals, d)
	}
	return disposals, nil
}

// SaveDisposal inserts the record and writes the asset off in one transaction.
// The unique index on disposals.asset_id reports a second disposal as ErrDuplicate.
func (r *PgxDisposalRepository) SaveDisposal(ctx context.Context, disposal domain.DisposalRecord) error {
	m, err := mapping.ToModelDisposal(disposal)
	if err != nil {
		return err
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM assets WHERE asset_id = $1 FOR UPDATE;`, m.AssetID).Scan(&status)
		if err != nil {
			return mapReadError(err, "asset "+m.AssetID)
		}
		if domain.AssetStatus(status) == domain.AssetUnderMaintenance {
			return fmt.Errorf("asset %s is under maintenance: %w", m.AssetID, apperrors.ErrConflict)
		}
		insert := `INSERT INTO disposals (` + disposalColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
		_, err = tx.Exec(ctx, insert,
			m.DisposalID, m.AssetID, m.Kind, m.InvoiceNumber, m.SaleValue, m.SaleDate, m.RegisteredAt,
			m.PreviousStatus, m.Settlement, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "disposal for asset "+m.AssetID)
		}
		return updateAssetStatus(ctx, tx, m.AssetID, string(domain.AssetWrittenOff), m.CreatedBy, m.CreatedAt)
	})
}

func (r *PgxDisposalRepository) DeleteDisposal(ctx context.Context, disposalID string, userID string, now time.Time) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var assetID, previous string
		err := tx.QueryRow(ctx,
			`DELETE FROM disposals WHERE disposal_id = $1 RETURNING asset_id, previous_status;`,
			disposalID,
		).Scan(&assetID, &previous)
		if err != nil {
			return mapReadError(err, "disposal "+disposalID)
		}
		status := domain.AssetStatus(previous)
		if !status.IsValid() || status == domain.AssetWrittenOff {
			status = domain.AssetActive
		}
		return updateAssetStatus(ctx, tx, assetID, string(status), userID, now)
	})
}

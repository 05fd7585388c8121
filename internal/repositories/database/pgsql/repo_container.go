package pgsql

import (
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		AssetRepo:        newPgxAssetRepository(base),
		CategoryRepo:     newPgxCategoryRepository(base),
		TaxCreditRepo:    newPgxTaxCreditRepository(base),
		DepreciationRepo: newPgxDepreciationRepository(base),
		DisposalRepo:     newPgxDisposalRepository(base),
		MaintenanceRepo:  newPgxMaintenanceRepository(base),
	}
}

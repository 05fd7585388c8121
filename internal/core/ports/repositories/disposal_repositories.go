package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// DisposalReader defines read operations for disposal records
type DisposalReader interface {
	FindDisposalByID(ctx context.Context, disposalID string) (*domain.DisposalRecord, error)

	// FindDisposalByAsset returns the asset's disposal, or apperrors.ErrNotFound.
	FindDisposalByAsset(ctx context.Context, assetID string) (*domain.DisposalRecord, error)

	ListDisposals(ctx context.Context) ([]domain.DisposalRecord, error)
}

// DisposalWriter defines write operations for disposal records
type DisposalWriter interface {
	// SaveDisposal persists the disposal and sets the asset status to WRITTEN_OFF
	// in one unit of work. Returns apperrors.ErrDuplicate when the asset already
	// has a disposal.
	SaveDisposal(ctx context.Context, disposal domain.DisposalRecord) error

	// DeleteDisposal removes the disposal and restores the asset's previous status
	// in one unit of work.
	DeleteDisposal(ctx context.Context, disposalID string, userID string, now time.Time) error
}

// DisposalRepositoryFacade combines all disposal repository interfaces
type DisposalRepositoryFacade interface {
	DisposalReader
	DisposalWriter
}

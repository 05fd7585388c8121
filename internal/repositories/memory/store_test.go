package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/repositories/memory"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAsset(id, code string) domain.Asset {
	return domain.Asset{
		AssetID:         id,
		Code:            code,
		Name:            "Asset " + code,
		AcquisitionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalValue:      decimal.NewFromInt(10000),
		CategoryID:      "cat-1",
		Status:          domain.AssetActive,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: "u", LastUpdatedAt: now, LastUpdatedBy: "u"},
	}
}

func TestAssets_SaveFindList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.SaveAsset(ctx, newAsset("a2", "PAT-002")))
	require.NoError(t, store.SaveAsset(ctx, newAsset("a1", "PAT-001")))

	err := store.SaveAsset(ctx, newAsset("a3", "pat-001"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	found, err := store.FindAssetByCode(ctx, "PAT-002")
	require.NoError(t, err)
	assert.Equal(t, "a2", found.AssetID)

	_, err = store.FindAssetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := store.ListAssets(ctx, domain.AssetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PAT-001", all[0].Code)

	page, err := store.ListAssets(ctx, domain.AssetFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "PAT-002", page[0].Code)

	empty, err := store.ListAssets(ctx, domain.AssetFilter{Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAssets_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	asset := newAsset("a1", "PAT-001")
	mv := decimal.NewFromInt(9000)
	asset.MarketValue = &mv
	require.NoError(t, store.SaveAsset(ctx, asset))

	got, err := store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	*got.MarketValue = decimal.NewFromInt(1)
	got.Name = "changed"

	again, err := store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, again.MarketValue.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, "Asset PAT-001", again.Name)
}

func TestDepreciation_SaveSupersedesAndDeleteReinstates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	for _, id := range []string{"d1", "d2", "d3"} {
		require.NoError(t, store.SaveDepreciationCalculation(ctx, domain.DepreciationCalculation{CalculationID: id, AssetID: "a1"}))
	}
	require.NoError(t, store.SaveDepreciationCalculation(ctx, domain.DepreciationCalculation{CalculationID: "other", AssetID: "a2"}))

	calcs, err := store.ListDepreciationCalculationsByAsset(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, calcs, 3)
	assert.True(t, calcs[0].Superseded)
	assert.True(t, calcs[1].Superseded)
	assert.False(t, calcs[2].Superseded)

	require.NoError(t, store.DeleteDepreciationCalculation(ctx, "d3"))
	d2, err := store.FindDepreciationCalculationByID(ctx, "d2")
	require.NoError(t, err)
	assert.False(t, d2.Superseded)

	other, err := store.FindDepreciationCalculationByID(ctx, "other")
	require.NoError(t, err)
	assert.False(t, other.Superseded)

	assert.ErrorIs(t, store.DeleteDepreciationCalculation(ctx, "d3"), apperrors.ErrNotFound)
}

func TestDisposal_SetsAndRestoresStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveAsset(ctx, newAsset("a1", "PAT-001")))

	record := domain.DisposalRecord{
		DisposalID:     "disp-1",
		AssetID:        "a1",
		Kind:           domain.DisposalSale,
		PreviousStatus: domain.AssetActive,
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: "u"},
	}
	require.NoError(t, store.SaveDisposal(ctx, record))

	got, err := store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetWrittenOff, got.Status)

	record.DisposalID = "disp-2"
	assert.ErrorIs(t, store.SaveDisposal(ctx, record), apperrors.ErrDuplicate)

	require.NoError(t, store.DeleteDisposal(ctx, "disp-1", "auditor", now.Add(time.Hour)))
	got, err = store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetActive, got.Status)
	assert.Equal(t, "auditor", got.LastUpdatedBy)

	_, err = store.FindDisposalByAsset(ctx, "a1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDisposal_UnknownAssetLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.SaveDisposal(ctx, domain.DisposalRecord{DisposalID: "d", AssetID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	disposals, err := store.ListDisposals(ctx)
	require.NoError(t, err)
	assert.Empty(t, disposals)
}

func TestMaintenance_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveAsset(ctx, newAsset("a1", "PAT-001")))

	record := domain.MaintenanceRecord{
		MaintenanceID:  "m1",
		AssetID:        "a1",
		StartedAt:      now,
		PreviousStatus: domain.AssetActive,
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: "u"},
	}
	require.NoError(t, store.StartMaintenance(ctx, record))

	asset, err := store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetUnderMaintenance, asset.Status)

	done := now.Add(48 * time.Hour)
	record.CompletedAt = &done
	record.LastUpdatedAt = done
	record.LastUpdatedBy = "tech"
	require.NoError(t, store.CompleteMaintenance(ctx, record))

	asset, err = store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetActive, asset.Status)

	records, err := store.ListMaintenanceByAsset(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsOpen())
}

func TestMaintenance_CompleteOnWrittenOffAsset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveAsset(ctx, newAsset("a1", "PAT-001")))

	record := domain.MaintenanceRecord{
		MaintenanceID:  "m1",
		AssetID:        "a1",
		StartedAt:      now,
		PreviousStatus: domain.AssetActive,
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: "u"},
	}
	require.NoError(t, store.StartMaintenance(ctx, record))

	disposal := domain.DisposalRecord{
		DisposalID:     "d1",
		AssetID:        "a1",
		Kind:           domain.DisposalWriteOff,
		SaleDate:       now,
		PreviousStatus: domain.AssetActive,
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: "u"},
	}
	assert.ErrorIs(t, store.SaveDisposal(ctx, disposal), apperrors.ErrConflict)

	require.NoError(t, store.UpdateAssetStatus(ctx, "a1", domain.AssetWrittenOff, "u", now))
	done := now.Add(time.Hour)
	record.CompletedAt = &done
	assert.ErrorIs(t, store.CompleteMaintenance(ctx, record), apperrors.ErrConflict)

	asset, err := store.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetWrittenOff, asset.Status)
	pending, err := store.FindMaintenanceByID(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, pending.IsOpen())
}

func TestCategories_ListFiltersInactive(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.SaveCategory(ctx, domain.Category{CategoryID: "c1", Name: "Vehicles", IsActive: true}))
	require.NoError(t, store.SaveCategory(ctx, domain.Category{CategoryID: "c2", Name: "Computers", IsActive: true}))
	assert.ErrorIs(t, store.SaveCategory(ctx, domain.Category{CategoryID: "c3", Name: "vehicles"}), apperrors.ErrDuplicate)

	require.NoError(t, store.DeactivateCategory(ctx, "c1", "u", now))

	active, err := store.ListCategories(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Computers", active[0].Name)

	all, err := store.ListCategories(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaxCredits_UpdateKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.SaveTaxCreditCalculation(ctx, domain.TaxCreditCalculation{CalculationID: "t1", AssetID: "a1"}))
	require.NoError(t, store.SaveTaxCreditCalculation(ctx, domain.TaxCreditCalculation{CalculationID: "t2", AssetID: "a1"}))
	require.NoError(t, store.UpdateTaxCreditCalculation(ctx, domain.TaxCreditCalculation{CalculationID: "t1", AssetID: "a1", TotalCredit: decimal.NewFromInt(5)}))

	calcs, err := store.ListTaxCreditCalculationsByAsset(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, calcs, 2)
	assert.Equal(t, "t1", calcs[0].CalculationID)
	assert.True(t, calcs[0].TotalCredit.Equal(decimal.NewFromInt(5)))

	assert.ErrorIs(t, store.UpdateTaxCreditCalculation(ctx, domain.TaxCreditCalculation{CalculationID: "zz"}), apperrors.ErrNotFound)
}

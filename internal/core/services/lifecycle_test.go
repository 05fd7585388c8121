package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/config"
	"github.com/SscSPs/fixed_asset_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T { return &v }

// TestAssetLifecycle drives one asset from registration to disposal through
// the service container backed by the in-memory store.
func TestAssetLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, err := services.NewServiceContainer(&config.Config{}, memory.NewRepositoryProvider(), services.WithClock(fixedClock))
	require.NoError(t, err)

	category, err := svc.Category.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:             "Machinery",
		AnnualRate:       ptr(dec("10")),
		UsefulLifeMonths: 24,
	}, "user-1")
	require.NoError(t, err)

	asset, err := svc.Asset.CreateAsset(ctx, dto.CreateAssetRequest{
		Code:            "PAT-001",
		Name:            "Lathe",
		AcquisitionDate: "2024-01-01",
		TotalValue:      ptr(dec("10000")),
		CategoryID:      category.CategoryID,
	}, "user-1")
	require.NoError(t, err)

	credit, err := svc.TaxCredit.CreateTaxCreditCalculation(ctx, asset.AssetID, ipiRequest(), "user-1")
	require.NoError(t, err)
	assert.True(t, credit.TotalCredit.Equal(dec("1000")))

	dep, err := svc.Depreciation.CreateDepreciationCalculation(ctx, asset.AssetID, dto.DepreciationRequest{
		Granularity:            string(domain.Monthly),
		TaxCreditCalculationID: credit.CalculationID,
	}, "user-1")
	require.NoError(t, err)
	assert.True(t, dep.BookValue.Equal(dec("7200")))

	record, err := svc.Maintenance.StartMaintenance(ctx, asset.AssetID, dto.StartMaintenanceRequest{
		Description: "Spindle bearing",
		StartedAt:   "2024-03-01",
	}, "user-2")
	require.NoError(t, err)
	current, err := svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetUnderMaintenance, current.Status)

	_, err = svc.Disposal.RegisterDisposal(ctx, asset.AssetID, dto.DisposalRequest{
		Kind:     string(domain.DisposalWriteOff),
		SaleDate: "2024-03-02",
	}, "user-3")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	current, err = svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetUnderMaintenance, current.Status)

	_, err = svc.Maintenance.CompleteMaintenance(ctx, asset.AssetID, record.MaintenanceID, dto.CompleteMaintenanceRequest{
		Cost:        ptr(dec("350")),
		CompletedAt: "2024-03-05",
	}, "user-2")
	require.NoError(t, err)
	current, err = svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetActive, current.Status)

	// Six monthly periods of 75 have accrued by 2024-06-30.
	disposal, err := svc.Disposal.RegisterDisposal(ctx, asset.AssetID, dto.DisposalRequest{
		Kind:      string(domain.DisposalSale),
		SaleValue: ptr(dec("9000")),
		SaleDate:  "2024-06-30",
	}, "user-3")
	require.NoError(t, err)
	s := disposal.Settlement
	assert.True(t, s.TotalCredits.Equal(dec("1000")), s.TotalCredits.String())
	assert.True(t, s.TotalDepreciation.Equal(dec("450")), s.TotalDepreciation.String())
	assert.True(t, s.ResidualBookValue.Equal(dec("8550")), s.ResidualBookValue.String())
	assert.True(t, s.GainOrLoss.Equal(dec("450")), s.GainOrLoss.String())
	assert.True(t, s.PercentVariance.Equal(dec("5.26")), s.PercentVariance.String())
	assert.Empty(t, s.Warnings)

	current, err = svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetWrittenOff, current.Status)

	_, err = svc.TaxCredit.CreateTaxCreditCalculation(ctx, asset.AssetID, ipiRequest(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, svc.Asset.DeleteAsset(ctx, asset.AssetID, "user-1"), apperrors.ErrConflict)
	assert.ErrorIs(t, svc.TaxCredit.DeleteTaxCreditCalculation(ctx, credit.CalculationID, "user-1"), apperrors.ErrConflict)
	assert.ErrorIs(t, svc.Depreciation.DeleteDepreciationCalculation(ctx, dep.CalculationID, "user-1"), apperrors.ErrConflict)

	summary, err := svc.Reporting.Dashboard(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AssetCount)
	assert.Equal(t, 1, summary.AssetsByStatus[domain.AssetWrittenOff])
	assert.Equal(t, 1, summary.DisposalCount)
	assert.True(t, summary.TotalGainOrLoss.Equal(dec("450")))
	assert.Len(t, summary.Monthly, 12)

	require.NoError(t, svc.Disposal.DeleteDisposal(ctx, disposal.DisposalID, "user-3"))
	current, err = svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetActive, current.Status)
}

// TestMaintenanceCannotReopenDisposedAsset covers a record left open when the
// asset was written off directly in storage.
func TestMaintenanceCannotReopenDisposedAsset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc, err := services.NewServiceContainer(&config.Config{}, store.Provider(), services.WithClock(fixedClock))
	require.NoError(t, err)

	category, err := svc.Category.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:             "Vehicles",
		AnnualRate:       ptr(dec("20")),
		UsefulLifeMonths: 60,
	}, "user-1")
	require.NoError(t, err)
	asset, err := svc.Asset.CreateAsset(ctx, dto.CreateAssetRequest{
		Code:            "PAT-002",
		Name:            "Truck",
		AcquisitionDate: "2024-01-01",
		TotalValue:      ptr(dec("50000")),
		CategoryID:      category.CategoryID,
	}, "user-1")
	require.NoError(t, err)

	record, err := svc.Maintenance.StartMaintenance(ctx, asset.AssetID, dto.StartMaintenanceRequest{
		Description: "Gearbox",
		StartedAt:   "2024-02-01",
	}, "user-2")
	require.NoError(t, err)

	// Storage refuses the disposal too while the record is open.
	disposal := domain.DisposalRecord{
		DisposalID:     "d1",
		AssetID:        asset.AssetID,
		Kind:           domain.DisposalWriteOff,
		SaleDate:       date("2024-02-10"),
		PreviousStatus: domain.AssetActive,
		AuditFields:    domain.AuditFields{CreatedAt: fixedNow, CreatedBy: "user-3"},
	}
	assert.ErrorIs(t, store.SaveDisposal(ctx, disposal), apperrors.ErrConflict)

	require.NoError(t, store.UpdateAssetStatus(ctx, asset.AssetID, domain.AssetWrittenOff, "user-3", fixedNow))

	_, err = svc.Maintenance.CompleteMaintenance(ctx, asset.AssetID, record.MaintenanceID, dto.CompleteMaintenanceRequest{
		CompletedAt: "2024-02-15",
	}, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	current, err := svc.Asset.GetAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssetWrittenOff, current.Status)
	_, err = svc.TaxCredit.CreateTaxCreditCalculation(ctx, asset.AssetID, ipiRequest(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestServiceContainer_UnknownAccrualStrategy(t *testing.T) {
	_, err := services.NewServiceContainer(&config.Config{DepreciationAccrualStrategy: "fifo"}, memory.NewRepositoryProvider())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

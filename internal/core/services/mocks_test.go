package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Asset repository ---

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) UpdateAssetStatus(ctx context.Context, assetID string, status domain.AssetStatus, userID string, now time.Time) error {
	return m.Called(ctx, assetID, status, userID, now).Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	return m.Called(ctx, assetID).Error(0)
}

// --- Category repository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	return m.Called(ctx, categoryID, userID, now).Error(0)
}

// --- Tax credit repository ---

type MockTaxCreditRepository struct {
	mock.Mock
}

func (m *MockTaxCreditRepository) FindTaxCreditCalculationByID(ctx context.Context, calculationID string) (*domain.TaxCreditCalculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCreditCalculation), args.Error(1)
}

func (m *MockTaxCreditRepository) ListTaxCreditCalculationsByAsset(ctx context.Context, assetID string) ([]domain.TaxCreditCalculation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCreditCalculation), args.Error(1)
}

func (m *MockTaxCreditRepository) ListTaxCreditCalculations(ctx context.Context) ([]domain.TaxCreditCalculation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCreditCalculation), args.Error(1)
}

func (m *MockTaxCreditRepository) SaveTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error {
	return m.Called(ctx, calc).Error(0)
}

func (m *MockTaxCreditRepository) UpdateTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error {
	return m.Called(ctx, calc).Error(0)
}

func (m *MockTaxCreditRepository) DeleteTaxCreditCalculation(ctx context.Context, calculationID string) error {
	return m.Called(ctx, calculationID).Error(0)
}

// --- Depreciation repository ---

type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) FindDepreciationCalculationByID(ctx context.Context, calculationID string) (*domain.DepreciationCalculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationCalculation), args.Error(1)
}

func (m *MockDepreciationRepository) ListDepreciationCalculationsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationCalculation, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationCalculation), args.Error(1)
}

func (m *MockDepreciationRepository) ListDepreciationCalculations(ctx context.Context) ([]domain.DepreciationCalculation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationCalculation), args.Error(1)
}

func (m *MockDepreciationRepository) SaveDepreciationCalculation(ctx context.Context, calc domain.DepreciationCalculation) error {
	return m.Called(ctx, calc).Error(0)
}

func (m *MockDepreciationRepository) DeleteDepreciationCalculation(ctx context.Context, calculationID string) error {
	return m.Called(ctx, calculationID).Error(0)
}

// --- Disposal repository ---

type MockDisposalRepository struct {
	mock.Mock
}

func (m *MockDisposalRepository) FindDisposalByID(ctx context.Context, disposalID string) (*domain.DisposalRecord, error) {
	args := m.Called(ctx, disposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisposalRecord), args.Error(1)
}

func (m *MockDisposalRepository) FindDisposalByAsset(ctx context.Context, assetID string) (*domain.DisposalRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisposalRecord), args.Error(1)
}

func (m *MockDisposalRepository) ListDisposals(ctx context.Context) ([]domain.DisposalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DisposalRecord), args.Error(1)
}

func (m *MockDisposalRepository) SaveDisposal(ctx context.Context, disposal domain.DisposalRecord) error {
	return m.Called(ctx, disposal).Error(0)
}

func (m *MockDisposalRepository) DeleteDisposal(ctx context.Context, disposalID string, userID string, now time.Time) error {
	return m.Called(ctx, disposalID, userID, now).Error(0)
}

// --- Maintenance repository ---

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, maintenanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRepository) ListMaintenanceByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRepository) StartMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockMaintenanceRepository) CompleteMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	return m.Called(ctx, record).Error(0)
}

// mockRepos bundles one mock per repository.
type mockRepos struct {
	asset        *MockAssetRepository
	category     *MockCategoryRepository
	taxCredit    *MockTaxCreditRepository
	depreciation *MockDepreciationRepository
	disposal     *MockDisposalRepository
	maintenance  *MockMaintenanceRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		asset:        new(MockAssetRepository),
		category:     new(MockCategoryRepository),
		taxCredit:    new(MockTaxCreditRepository),
		depreciation: new(MockDepreciationRepository),
		disposal:     new(MockDisposalRepository),
		maintenance:  new(MockMaintenanceRepository),
	}
}

func (r *mockRepos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:        r.asset,
		CategoryRepo:     r.category,
		TaxCreditRepo:    r.taxCredit,
		DepreciationRepo: r.depreciation,
		DisposalRepo:     r.disposal,
		MaintenanceRepo:  r.maintenance,
	}
}

func (r *mockRepos) assertExpectations(t mock.TestingT) {
	r.asset.AssertExpectations(t)
	r.category.AssertExpectations(t)
	r.taxCredit.AssertExpectations(t)
	r.depreciation.AssertExpectations(t)
	r.disposal.AssertExpectations(t)
	r.maintenance.AssertExpectations(t)
}

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

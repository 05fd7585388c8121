package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/observability/metrics"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// recordingObserver counts observations instead of exporting them.
type recordingObserver struct {
	calculations map[string]int
	warnings     map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{calculations: map[string]int{}, warnings: map[string]int{}}
}

func (o *recordingObserver) ObserveCalculation(kind string, _ int, _ error, _ time.Duration) {
	o.calculations[kind]++
}

func (o *recordingObserver) ObserveSettlementWarning(code string) {
	o.warnings[code]++
}

type DisposalServiceTestSuite struct {
	suite.Suite
	repos    *mockRepos
	observer *recordingObserver
	service  portssvc.DisposalSvcFacade
	ctx      context.Context
}

func (suite *DisposalServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.observer = newRecordingObserver()
	suite.service = services.NewDisposalService(suite.repos.provider(), nil,
		services.WithClock(fixedClock), services.WithObserver(suite.observer))
	suite.ctx = context.Background()
}

func (suite *DisposalServiceTestSuite) TearDownTest() {
	suite.repos.assertExpectations(suite.T())
}

func (suite *DisposalServiceTestSuite) expectNoCalculations() {
	suite.repos.taxCredit.On("ListTaxCreditCalculationsByAsset", suite.ctx, "a1").Return(nil, nil).Once()
	suite.repos.depreciation.On("ListDepreciationCalculationsByAsset", suite.ctx, "a1").Return(nil, nil).Once()
}

func (suite *DisposalServiceTestSuite) TestRegisterDisposal_Sale() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectNoCalculations()
	suite.repos.disposal.On("SaveDisposal", suite.ctx, mock.MatchedBy(func(d domain.DisposalRecord) bool {
		return d.AssetID == "a1" && d.PreviousStatus == domain.AssetActive
	})).Return(nil).Once()
	saleValue := decimal.NewFromInt(9000)

	record, err := suite.service.RegisterDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:          string(domain.DisposalSale),
		InvoiceNumber: "NF-77",
		SaleValue:     &saleValue,
		SaleDate:      "2024-06-30",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(record.DisposalID)
	suite.Equal(fixedNow, record.RegisteredAt)
	suite.Equal(date("2024-06-30"), record.SaleDate)
	suite.True(record.Settlement.ResidualBookValue.Equal(decimal.NewFromInt(10000)))
	suite.True(record.Settlement.GainOrLoss.Equal(decimal.NewFromInt(-1000)))
	suite.Equal(domain.AccrualProrated, record.Settlement.Strategy)
	suite.Len(record.Settlement.Warnings, 2)
	suite.Equal(2, suite.observer.warnings[string(domain.WarningInconsistentState)])
	suite.Equal(1, suite.observer.calculations[metrics.KindSettlement])
}

func (suite *DisposalServiceTestSuite) TestRegisterDisposal_WriteOffDefaultsToZero() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectNoCalculations()
	suite.repos.disposal.On("SaveDisposal", suite.ctx, mock.AnythingOfType("domain.DisposalRecord")).Return(nil).Once()

	record, err := suite.service.RegisterDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:     string(domain.DisposalWriteOff),
		SaleDate: "2024-06-30",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(record.SaleValue.IsZero())
	suite.True(record.Settlement.GainOrLoss.Equal(decimal.NewFromInt(-10000)))
}

func (suite *DisposalServiceTestSuite) TestRegisterDisposal_AlreadyDisposed() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(&domain.DisposalRecord{DisposalID: "d0"}, nil).Once()

	_, err := suite.service.RegisterDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:     string(domain.DisposalWriteOff),
		SaleDate: "2024-06-30",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DisposalServiceTestSuite) TestRegisterDisposal_UnderMaintenance() {
	asset := activeAsset()
	asset.Status = domain.AssetUnderMaintenance
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(asset, nil).Once()

	_, err := suite.service.RegisterDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:     string(domain.DisposalWriteOff),
		SaleDate: "2024-06-30",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repos.disposal.AssertNotCalled(suite.T(), "SaveDisposal", mock.Anything, mock.Anything)
}

func (suite *DisposalServiceTestSuite) TestRegisterDisposal_DuplicateOnSaveIsConflict() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectNoCalculations()
	suite.repos.disposal.On("SaveDisposal", suite.ctx, mock.AnythingOfType("domain.DisposalRecord")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:     string(domain.DisposalWriteOff),
		SaleDate: "2024-06-30",
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *DisposalServiceTestSuite) TestPreviewDisposal_SaleBeforeAcquisition() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	saleValue := decimal.NewFromInt(100)

	_, err := suite.service.PreviewDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:      string(domain.DisposalSale),
		SaleValue: &saleValue,
		SaleDate:  "2023-12-31",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DisposalServiceTestSuite) TestPreviewDisposal_SaleWithoutValue() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.expectNoCalculations()

	_, err := suite.service.PreviewDisposal(suite.ctx, "a1", dto.DisposalRequest{
		Kind:     string(domain.DisposalSale),
		SaleDate: "2024-06-30",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DisposalServiceTestSuite) TestListDisposals_EmptyWhenNone() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(activeAsset(), nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()

	records, err := suite.service.ListDisposals(suite.ctx, "a1")

	suite.Require().NoError(err)
	suite.NotNil(records)
	suite.Empty(records)
}

func (suite *DisposalServiceTestSuite) TestDeleteDisposal() {
	suite.repos.disposal.On("FindDisposalByID", suite.ctx, "d1").
		Return(&domain.DisposalRecord{DisposalID: "d1", AssetID: "a1", PreviousStatus: domain.AssetActive}, nil).Once()
	suite.repos.disposal.On("DeleteDisposal", suite.ctx, "d1", "user-1", fixedNow).Return(nil).Once()

	suite.NoError(suite.service.DeleteDisposal(suite.ctx, "d1", "user-1"))
}

func TestDisposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DisposalServiceTestSuite))
}

func TestDisposalService_FullTotalStrategy(t *testing.T) {
	repos := newMockRepos()
	ctx := context.Background()
	svc := services.NewDisposalService(repos.provider(), accounting.FullTotalAccrual{})
	repos.asset.On("FindAssetByID", ctx, "a1").Return(activeAsset(), nil).Once()
	repos.taxCredit.On("ListTaxCreditCalculationsByAsset", ctx, "a1").Return(nil, nil).Once()
	repos.depreciation.On("ListDepreciationCalculationsByAsset", ctx, "a1").Return(nil, nil).Once()
	saleValue := decimal.NewFromInt(10000)

	settlement, err := svc.PreviewDisposal(ctx, "a1", dto.DisposalRequest{
		Kind:      string(domain.DisposalSale),
		SaleValue: &saleValue,
		SaleDate:  "2024-06-30",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settlement.Strategy != domain.AccrualFullTotal {
		t.Errorf("strategy = %s, want %s", settlement.Strategy, domain.AccrualFullTotal)
	}
	repos.assertExpectations(t)
}

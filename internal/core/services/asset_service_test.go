package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AssetServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.AssetSvcFacade
	ctx     context.Context
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewAssetService(suite.repos.provider(), services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func (suite *AssetServiceTestSuite) TearDownTest() {
	suite.repos.assertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) createRequest() dto.CreateAssetRequest {
	value := decimal.NewFromInt(10000)
	return dto.CreateAssetRequest{
		Code:            " PAT-001 ",
		Name:            "Lathe",
		AcquisitionDate: "2024-01-10",
		TotalValue:      &value,
		Taxes:           dto.TaxComponentsRequest{IPI: decimal.NewFromInt(1000)},
		CategoryID:      "cat-1",
	}
}

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	suite.repos.category.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", IsActive: true}, nil).Once()
	suite.repos.asset.On("FindAssetByCode", suite.ctx, "PAT-001").Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.asset.On("SaveAsset", suite.ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Code == "PAT-001" && a.Status == domain.AssetActive
	})).Return(nil).Once()

	asset, err := suite.service.CreateAsset(suite.ctx, suite.createRequest(), "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(asset.AssetID)
	suite.Equal("PAT-001", asset.Code)
	suite.Equal(date("2024-01-10"), asset.AcquisitionDate)
	suite.True(asset.Taxes.IPI.Equal(decimal.NewFromInt(1000)))
	suite.Equal("user-1", asset.CreatedBy)
	suite.Equal(fixedNow, asset.CreatedAt)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_DuplicateCode() {
	suite.repos.category.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", IsActive: true}, nil).Once()
	suite.repos.asset.On("FindAssetByCode", suite.ctx, "PAT-001").Return(&domain.Asset{AssetID: "other"}, nil).Once()

	asset, err := suite.service.CreateAsset(suite.ctx, suite.createRequest(), "user-1")

	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsInvalidInput() {
	zero := decimal.Zero
	tests := []struct {
		name   string
		mutate func(*dto.CreateAssetRequest)
	}{
		{"zero value", func(r *dto.CreateAssetRequest) { r.TotalValue = &zero }},
		{"negative tax", func(r *dto.CreateAssetRequest) { r.Taxes.ICMS = decimal.NewFromInt(-1) }},
		{"bad date", func(r *dto.CreateAssetRequest) { r.AcquisitionDate = "10/01/2024" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.createRequest()
			tt.mutate(&req)
			_, err := suite.service.CreateAsset(suite.ctx, req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *AssetServiceTestSuite) TestCreateAsset_InactiveCategory() {
	suite.repos.category.On("FindCategoryByID", suite.ctx, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", IsActive: false}, nil).Once()

	_, err := suite.service.CreateAsset(suite.ctx, suite.createRequest(), "user-1")

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("categoryID", vErr.Field)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_WrittenOffIsReadOnly() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").
		Return(&domain.Asset{AssetID: "a1", Status: domain.AssetWrittenOff}, nil).Once()
	name := "Renamed"

	_, err := suite.service.UpdateAsset(suite.ctx, "a1", dto.UpdateAssetRequest{Name: &name}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AssetServiceTestSuite) TestReassessAsset_KeepsFiscalValue() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(&domain.Asset{
		AssetID:         "a1",
		AcquisitionDate: date("2024-01-10"),
		TotalValue:      decimal.NewFromInt(10000),
		Status:          domain.AssetActive,
	}, nil).Once()
	suite.repos.asset.On("UpdateAsset", suite.ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()
	market := decimal.NewFromInt(8500)

	asset, err := suite.service.ReassessAsset(suite.ctx, "a1", dto.ReassessAssetRequest{MarketValue: &market}, "user-2")

	suite.Require().NoError(err)
	suite.True(asset.TotalValue.Equal(decimal.NewFromInt(10000)))
	suite.True(asset.CurrentValue().Equal(market))
	suite.Equal(fixedNow, *asset.LastReassessedAt)
	suite.Equal("user-2", asset.LastUpdatedBy)
}

func (suite *AssetServiceTestSuite) TestReassessAsset_BeforeAcquisition() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(&domain.Asset{
		AssetID:         "a1",
		AcquisitionDate: date("2024-01-10"),
		Status:          domain.AssetActive,
	}, nil).Once()
	market := decimal.NewFromInt(8500)

	_, err := suite.service.ReassessAsset(suite.ctx, "a1",
		dto.ReassessAssetRequest{MarketValue: &market, ReassessedAt: "2023-12-31"}, "user-2")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_BlockedByDependents() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(&domain.Asset{AssetID: "a1"}, nil).Once()
	suite.repos.taxCredit.On("ListTaxCreditCalculationsByAsset", suite.ctx, "a1").
		Return([]domain.TaxCreditCalculation{{CalculationID: "tc1"}}, nil).Once()
	suite.repos.depreciation.On("ListDepreciationCalculationsByAsset", suite.ctx, "a1").
		Return([]domain.DepreciationCalculation{}, nil).Once()
	suite.repos.maintenance.On("ListMaintenanceByAsset", suite.ctx, "a1").
		Return([]domain.MaintenanceRecord{}, nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAsset(suite.ctx, "a1", "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repos.asset.AssertNotCalled(suite.T(), "DeleteAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestDeleteAsset_Success() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "a1").Return(&domain.Asset{AssetID: "a1"}, nil).Once()
	suite.repos.taxCredit.On("ListTaxCreditCalculationsByAsset", suite.ctx, "a1").Return(nil, nil).Once()
	suite.repos.depreciation.On("ListDepreciationCalculationsByAsset", suite.ctx, "a1").Return(nil, nil).Once()
	suite.repos.maintenance.On("ListMaintenanceByAsset", suite.ctx, "a1").Return(nil, nil).Once()
	suite.repos.disposal.On("FindDisposalByAsset", suite.ctx, "a1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.asset.On("DeleteAsset", suite.ctx, "a1").Return(nil).Once()

	suite.NoError(suite.service.DeleteAsset(suite.ctx, "a1", "user-1"))
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_NotFound() {
	suite.repos.asset.On("FindAssetByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAssetByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "asset not found")
}

func (suite *AssetServiceTestSuite) TestListAssets_NeverNil() {
	params := dto.ListAssetsParams{Limit: 10}
	suite.repos.asset.On("ListAssets", suite.ctx, params.ToFilter()).Return(nil, nil).Once()

	assets, err := suite.service.ListAssets(suite.ctx, params)

	suite.Require().NoError(err)
	suite.NotNil(assets)
	suite.Empty(assets)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}

func TestAssetService_RepositoryErrorPropagates(t *testing.T) {
	repos := newMockRepos()
	svc := services.NewAssetService(repos.provider())
	ctx := context.Background()
	repos.asset.On("FindAssetByID", ctx, "a1").Return(nil, assert.AnError).Once()

	_, err := svc.GetAssetByID(ctx, "a1")

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	repos.assertExpectations(t)
}

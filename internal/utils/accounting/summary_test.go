package accounting_test

import (
	"testing"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	start := day(2024, 11, 1)
	credits := creditCalc(t, "6000", map[domain.TaxType]domain.TaxCreditParams{
		domain.IPI: {Rate: dec("10"), Installments: 3},
	}, domain.Monthly, start)
	current := depreciationCalc(t, accounting.DepreciationInput{
		AssetValue: dec("6000"), CreditTotal: dec("600"), AnnualRate: dec("20"), UsefulLifeMonths: 60,
		Granularity: domain.Monthly, StartDate: start,
	})
	superseded := current
	superseded.Superseded = true

	in := accounting.SummaryInput{
		Assets: []domain.Asset{
			{AssetID: assetID, TotalValue: dec("6000"), MarketValue: decPtr("4000"), Status: domain.AssetWrittenOff},
			{AssetID: "asset-2", TotalValue: dec("1500"), Status: domain.AssetActive},
			{AssetID: "asset-3", TotalValue: dec("500"), Status: domain.AssetActive},
		},
		CreditCalculations:       []domain.TaxCreditCalculation{credits},
		DepreciationCalculations: []domain.DepreciationCalculation{current, superseded},
		Disposals: []domain.DisposalRecord{
			{DisposalID: "d-1", AssetID: assetID, Settlement: domain.Settlement{GainOrLoss: dec("-250.50")}},
		},
	}

	all := accounting.Summarize(in)
	assert.Equal(t, 3, all.AssetCount)
	assert.Equal(t, 2, all.AssetsByStatus[domain.AssetActive])
	assert.Equal(t, 1, all.AssetsByStatus[domain.AssetWrittenOff])
	assert.True(t, all.TotalAcquisitionValue.Equal(dec("8000")))
	assert.True(t, all.TotalCurrentValue.Equal(dec("6000")))
	assert.True(t, all.TotalCredits.Equal(dec("600")))
	assert.True(t, all.TotalDepreciation.Equal(current.TotalDepreciation))
	assert.Equal(t, 1, all.DisposalCount)
	assert.True(t, all.TotalGainOrLoss.Equal(dec("-250.50")))

	require.Len(t, all.Monthly, 60)
	assert.Equal(t, "2024-11", all.Monthly[0].Month)
	assert.True(t, all.Monthly[0].Credits.Equal(dec("200")))
	assert.True(t, all.Monthly[0].Depreciation.Equal(dec("90")))
	assert.Equal(t, "2025-01", all.Monthly[2].Month)
	assert.True(t, all.Monthly[3].Credits.IsZero())

	in.Year = 2025
	year := accounting.Summarize(in)
	require.Len(t, year.Monthly, 12)
	assert.Equal(t, "2025-01", year.Monthly[0].Month)
	assert.Equal(t, "2025-12", year.Monthly[11].Month)
	assert.True(t, year.Monthly[0].Credits.Equal(dec("200")))
	assert.True(t, year.TotalCredits.Equal(all.TotalCredits))
}

func TestSummarize_Empty(t *testing.T) {
	s := accounting.Summarize(accounting.SummaryInput{})
	assert.Zero(t, s.AssetCount)
	assert.Empty(t, s.Monthly)
	assert.True(t, s.TotalCredits.IsZero())
}

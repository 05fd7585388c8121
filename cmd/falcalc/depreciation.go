package main

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDepreciationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depreciation [file]",
		Short: "Compute a straight-line depreciation schedule",
		Long: `Computes a depreciation schedule. Without a category store the rate and
useful life must be given explicitly as annualRate and usefulLifeMonths.`,
		Example: `  falcalc depreciation input.json --compact`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDepreciation,
	}
}

func runDepreciation(cmd *cobra.Command, args []string) error {
	var req dto.DepreciationRequest
	if err := readInput(cmd, args, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if req.AnnualRate == nil || req.UsefulLifeMonths == nil {
		return accounting.ErrCategoryRequired
	}
	if req.AssetValue == nil {
		return apperrors.NewValidationError("assetValue", "required")
	}
	startDate, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	method := domain.DepreciationMethod(req.Method)
	if method == "" {
		method = domain.StraightLine
	}
	result, err := accounting.CalculateDepreciation(accounting.DepreciationInput{
		AssetValue:       *req.AssetValue,
		CreditTotal:      valueOrZero(req.CreditTotal),
		ResidualValue:    valueOrZero(req.ResidualValue),
		AnnualRate:       *req.AnnualRate,
		UsefulLifeMonths: *req.UsefulLifeMonths,
		Granularity:      domain.Granularity(req.Granularity),
		Method:           method,
		StartDate:        startDate,
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, result)
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

package main

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/spf13/cobra"
)

func newCreditsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credits [file]",
		Short: "Compute per-tax credit schedules",
		Example: `  echo '{"baseValue":"10000","granularity":"MONTHLY","startDate":"2024-01-01",
        "taxes":{"ICMS":{"rate":"12","installments":48}}}' | falcalc credits`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCredits,
	}
}

func runCredits(cmd *cobra.Command, args []string) error {
	var req dto.TaxCreditRequest
	if err := readInput(cmd, args, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if req.BaseValue == nil {
		return apperrors.NewValidationError("baseValue", "required")
	}
	startDate, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	result, err := accounting.CalculateTaxCredits(accounting.TaxCreditInput{
		BaseValue:   *req.BaseValue,
		Granularity: domain.Granularity(req.Granularity),
		StartDate:   startDate,
		Taxes:       req.TaxParams(),
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, result)
}

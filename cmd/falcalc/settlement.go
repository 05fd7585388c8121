package main

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// settlementDocument bundles an asset with its saved calculations, as exported
// from the API, plus the sale being evaluated.
type settlementDocument struct {
	Asset                    domain.Asset                     `json:"asset"`
	SaleDate                 string                           `json:"saleDate" binding:"required,datetime=2006-01-02"`
	SaleValue                *decimal.Decimal                 `json:"saleValue" binding:"required"`
	CreditCalculations       []domain.TaxCreditCalculation    `json:"creditCalculations"`
	DepreciationCalculations []domain.DepreciationCalculation `json:"depreciationCalculations"`
}

func newSettlementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement [file]",
		Short: "Reconcile an asset at its sale date",
		Long: `Reconstructs the credits and depreciation accumulated up to the sale date and
reports residual book value, gain or loss and percent variance.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSettlement,
	}
	cmd.Flags().String("strategy", string(domain.AccrualProrated), "Depreciation accrual strategy (prorated|full_total)")
	return cmd
}

func runSettlement(cmd *cobra.Command, args []string) error {
	strategyName, _ := cmd.Flags().GetString("strategy")
	strategy, err := accounting.AccrualStrategyByName(strategyName)
	if err != nil {
		return err
	}

	var doc settlementDocument
	if err := readInput(cmd, args, &doc); err != nil {
		return err
	}
	if err := dto.Validate(doc); err != nil {
		return err
	}
	saleDate, err := dto.ParseDate("saleDate", doc.SaleDate)
	if err != nil {
		return err
	}

	settlement, err := accounting.CalculateSettlement(accounting.SettlementInput{
		Asset:                    doc.Asset,
		SaleDate:                 saleDate,
		SaleValue:                doc.SaleValue,
		CreditCalculations:       doc.CreditCalculations,
		DepreciationCalculations: doc.DepreciationCalculations,
		Strategy:                 strategy,
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, settlement)
}

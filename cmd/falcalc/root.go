package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "falcalc",
		Short: "Fixed asset ledger calculators",
		Long: `falcalc computes tax credit schedules, depreciation schedules and disposal
settlements from JSON input, using the same rules as the ledger API.

Each subcommand reads a JSON document from the file given as its argument,
or from stdin when the argument is omitted or "-", and prints JSON.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("compact", false, "Print compact JSON instead of indented output")

	root.AddCommand(newCreditsCmd(), newDepreciationCmd(), newSettlementCmd())
	return root
}

// readInput decodes the JSON document named by args (or stdin) into v.
// Unknown fields are rejected so that typos do not silently fall back to defaults.
func readInput(cmd *cobra.Command, args []string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	return nil
}

func writeOutput(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if compact, _ := cmd.Flags().GetBool("compact"); !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

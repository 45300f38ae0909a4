package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <bank> <output.json>",
		Short: "Extract config.json to a standalone file",
		Long: `The export command decodes the config document inside a bank and
writes it to a standalone JSON file, for editing or archival.

Example:
  npbctl export mybank.npb config.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	bankPath, outPath := args[0], args[1]

	printVerbose("Opening bank: %s\n", bankPath)

	s, err := bank.Load(bankPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, s.ConfigJSON(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("Exported config to %s\n", outPath)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
)

func init() {
	rootCmd.AddCommand(newUpdateCmd())
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <bank> <input.json>",
		Short: "Replace config.json from a standalone file",
		Long: `The update command validates a standalone JSON document and embeds
its bytes verbatim as the bank's new config document, then rebuilds and
overwrites the bank in place. A one-time .bak backup of the original is
created first.

Example:
  npbctl update mybank.npb config.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args)
		},
	}
	return cmd
}

func runUpdate(args []string) error {
	bankPath, inPath := args[0], args[1]

	printVerbose("Opening bank: %s\n", bankPath)

	s, err := bank.Load(bankPath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	if err := s.ReplaceConfig(raw); err != nil {
		return err
	}
	if err := s.Overwrite(); err != nil {
		return err
	}
	printInfo("Updated config.json inside %s (backup created if not already present)\n", bankPath)
	return nil
}

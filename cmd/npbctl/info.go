package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <bank>",
		Short: "Report bank metadata: presets and opaque assets",
		Long: `The info command opens a bank and reports its config version, preset
list (in recall order), and the opaque asset members.

Example:
  npbctl info mybank.npb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	bankPath := args[0]

	printVerbose("Opening bank: %s\n", bankPath)

	s, err := bank.Load(bankPath)
	if err != nil {
		return err
	}

	printInfo("Bank: %s\n", bankPath)
	if stat, err := os.Stat(bankPath); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	if v, ok := s.ConfigVersion(); ok {
		printInfo("  Config version: %s\n", v)
	}

	if presets, err := s.Presets(); err == nil {
		printInfo("\nPresets (%d):\n", presets.Len())
		for i := 0; i < presets.Len(); i++ {
			name, _ := s.PresetName(i)
			printInfo("  %3d: %s\n", i, name)
		}
	}

	assets := s.Assets()
	printInfo("\nAssets (%d):\n", len(assets))
	for _, m := range assets {
		printInfo("  %8d  %s\n", m.Header.Size, m.Header.Name)
	}
	return nil
}

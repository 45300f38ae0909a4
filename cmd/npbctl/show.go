package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
)

func init() {
	rootCmd.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <bank>",
		Short: "Print the bank's config.json",
		Long: `The show command decodes the config document inside a bank and
pretty-prints it to stdout.

Example:
  npbctl show mybank.npb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func runShow(args []string) error {
	printVerbose("Opening bank: %s\n", args[0])

	s, err := bank.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(string(s.ConfigJSON()))
	return nil
}

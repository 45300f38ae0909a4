package main

import (
	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <bank> <pointer> <value>",
		Short: "Set the value at a JSON pointer",
		Long: `The set command assigns a value at an RFC 6901 JSON pointer inside the
bank's config document, then rebuilds and overwrites the bank in place. A
one-time .bak backup of the original is created first.

The value is coerced in a fixed order: boolean, null, integer, float, then
literal string. So "true" becomes a boolean and "1" an integer, never the
strings "true" or "1".

The pointer must address an existing field; set never creates new keys or
grows arrays.

Example:
  npbctl set mybank.npb /presets/0/name "Lead Boost"
  npbctl set mybank.npb /presets/2/potiGain 0.75
  npbctl set mybank.npb /lcdBrightness 9`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	bankPath, ptrText, rawValue := args[0], args[1], args[2]

	printVerbose("Opening bank: %s\n", bankPath)

	s, err := bank.Load(bankPath)
	if err != nil {
		return err
	}
	if err := s.Set(ptrText, rawValue); err != nil {
		return err
	}
	if err := s.Overwrite(); err != nil {
		return err
	}
	printInfo("Set %s = %s\n", ptrText, rawValue)
	return nil
}

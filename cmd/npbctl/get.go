package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank"
	"github.com/dimehead/npbkit/bank/config"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <bank> <pointer>",
		Short: "Print the value at a JSON pointer",
		Long: `The get command resolves an RFC 6901 JSON pointer against the bank's
config document and prints the value. Scalars print bare; objects and arrays
print as indented JSON. A leading '#' on the pointer is ignored.

Example:
  npbctl get mybank.npb /presets/0/name
  npbctl get mybank.npb '#/presets/2/potiGain'
  npbctl get mybank.npb /presets/0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	bankPath, ptrText := args[0], args[1]

	printVerbose("Opening bank: %s\n", bankPath)

	s, err := bank.Load(bankPath)
	if err != nil {
		return err
	}
	node, err := s.Get(ptrText)
	if err != nil {
		return err
	}
	fmt.Println(renderValue(node))
	return nil
}

// renderValue formats a node for terminal output: bare scalars, indented
// JSON for containers.
func renderValue(n config.Node) string {
	switch v := n.(type) {
	case config.String:
		return v.Value()
	case config.Number:
		return v.Literal()
	case config.Bool:
		if v {
			return "true"
		}
		return "false"
	case config.Null:
		return "null"
	}
	return string(config.Encode(n))
}

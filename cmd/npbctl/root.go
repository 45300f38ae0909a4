package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimehead/npbkit/bank/archive"
	"github.com/dimehead/npbkit/bank/config"
	"github.com/dimehead/npbkit/bank/pointer"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "npbctl",
	Short: "Inspect and edit NAM Player .npb bank files",
	Long: `npbctl reads and modifies the config.json inside NAM Player .npb bank
archives (gzip-compressed tar) without disturbing the other members: neural
model captures, impulse responses, and device state pass through rebuilds
byte-identical and in their original order.

Before the first in-place overwrite of a bank, its original bytes are copied
once to a .bak sibling; the backup is never refreshed afterwards.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

// Exit codes per failure family, so scripted callers can branch on the kind
// of failure without parsing messages.
const (
	exitOK      = 0
	exitGeneric = 1
	exitFormat  = 2
	exitParse   = 3
	exitPointer = 4
	exitIO      = 5
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, archive.ErrFormat):
		return exitFormat
	case errors.Is(err, config.ErrParse):
		return exitParse
	case errors.Is(err, pointer.ErrSyntax), errors.Is(err, pointer.ErrResolve):
		return exitPointer
	case isIOError(err):
		return exitIO
	}
	return exitGeneric
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}

func execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

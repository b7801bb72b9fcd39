// Package cmd is for command line interactions with the findoverlaps application
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabrielvpina/utils/config"
	"github.com/gabrielvpina/utils/internal/logging"
	"github.com/gabrielvpina/utils/internal/overlap"
	"github.com/spf13/cobra"
)

// version can be overridden at build time with -ldflags "-X github.com/gabrielvpina/utils/cmd.version=..."
var version = "0.1.0"

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// NewRootCmd returns the base command, called without any subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "findoverlaps <fasta_file>",
		Short: "Find overlapping contigs in a FASTA file",
		Long: `Find overlapping contigs in a FASTA file.

Every ordered pair of sequences is checked for an exact match between the end (3')
of one and the start (5') of the other, and between the start of one and the end
of the other. Each match of at least --min_overlap characters is reported on its
own line, so a pair that matches at several lengths is reported once per length.

Settings can also come from a YAML settings file (--settings) or the environment
(FINDOVERLAPS_MIN_OVERLAP, FINDOVERLAPS_LOG_LEVEL). Flags take precedence.`,
		Example: `  findoverlaps contigs.fa
  findoverlaps contigs.fa.gz -m 20
  findoverlaps --min_overlap 15 --verbose contigs.fa`,
		Version:       version,
		Args:          fastaArg,
		RunE:          overlap.FindCmd,
		SilenceErrors: true,
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	config.AddFlags(rootCmd.Flags())
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	})

	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// fastaArg requires exactly one positional argument: the FASTA file's path.
func fastaArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	}
	return nil
}

// Execute runs the root command against os.Args and exits.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	c, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, c.UsageString())
		return exitUsage
	}

	logging.New(stderr, "error", false).Error("findoverlaps failed", "err", err)
	return exitError
}

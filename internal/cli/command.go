// Package cli implements the command-line interface of dux.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dux/internal/dux"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.command().Execute()
}

func (c CLI) command() *cobra.Command {
	var options dux.Options

	cmd := &cobra.Command{
		Use:   "dux [path]",
		Short: "Report per-directory disk usage with hard links counted once",
		Long: heredoc.Doc(`
			dux reports the disk usage of a directory tree as an indented,
			size-sorted listing with human-readable sizes.

			Content reachable through several hard links is counted once, not
			once per link. Within each directory, subdirectories sort before
			files, larger entries before smaller ones, and names break the
			remaining ties.

			Directories with "boring" names (version-control metadata and the
			like) still contribute their full size but list an ellipsis in
			place of their contents. Override the list per run with --boring,
			or permanently with a YAML config file:

				boring:
				  - .git
				  - node_modules

			Unreadable directories and entries are reported on stderr and
			skipped; the report covers whatever was successfully traversed.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			allowedOutputs := []string{"tree", "json"}
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			return logic(options, cmd.Flags().Changed("boring"))
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(
		&options.Boring,
		"boring",
		"b",
		nil,
		"Directory names to collapse in the report (overrides the config file)",
	)
	flags.StringVarP(&options.Config, "config", "c", "", "YAML config file with a boring-directory list")
	flags.StringVarP(&options.Output, "output", "o", "tree", "Output format: tree or json")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum rendered depth (0=unlimited)")
	flags.BoolVarP(&options.Summary, "summary", "s", false, "Print a scan summary on stderr")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.SortFlags = false

	return cmd
}

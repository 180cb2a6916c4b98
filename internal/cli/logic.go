package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dux/internal/config"
	"github.com/idelchi/dux/internal/dux"
)

func logic(options dux.Options, boringChanged bool) error {
	// The config file supplies the boring list unless --boring overrode it.
	if !boringChanged {
		cfg := config.Default()

		if options.Config != "" {
			loaded, err := config.Load(options.Config)
			if err != nil {
				return err
			}

			cfg = loaded
		}

		options.Boring = cfg.Boring
	}

	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(entries, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := dux.Run(ctx, options, os.Stderr, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Summary {
		PrintSummary(result, os.Stderr)
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	default:
		return PrintTree(result, os.Stdout, options.Boring, options.Depth)
	}
}

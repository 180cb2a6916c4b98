package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dux/internal/dux"
)

// PrintJSON outputs the aggregated tree in JSON format.
func PrintJSON(result *dux.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result.Root, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTree outputs the indented usage report.
func PrintTree(result *dux.Result, writer io.Writer, boring []string, depth int) error {
	dux.NewRenderer(writer, boring, depth).Render(result.Root)

	return nil
}

// PrintSummary outputs run totals in human-readable form.
func PrintSummary(result *dux.Result, writer io.Writer) {
	fmt.Fprintf(writer, "%s entries (%s directories), %s unique, %s (%s bytes), %d errors, %v\n",
		humanize.Comma(result.Entries),
		humanize.Comma(result.Dirs),
		humanize.Comma(int64(result.Unique)),
		humanize.IBytes(uint64(result.Bytes)), //nolint:gosec // Bytes is always positive
		humanize.Comma(result.Bytes),
		result.Errors,
		result.Elapsed)
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jimezsa/findyourhome/internal/export"
	"github.com/jimezsa/findyourhome/internal/listing"
)

// OutputOptions are shared by the commands that print listings.
type OutputOptions struct {
	Format string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func resolveFormat(ctx *Context, opts OutputOptions, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return export.ParseFormat(opts.Format)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

// writeListings prints listings with the output options. scores may be nil.
func writeListings(ctx *Context, opts OutputOptions, listings []listing.Listing, scores []int) error {
	format, err := resolveFormat(ctx, opts, opts.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && opts.Output == ""
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	return export.WriteListings(writer, listings, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
		Scores:       scores,
	})
}

// writeSnapshot prints a submitted form value to stdout.
func writeSnapshot(ctx *Context, opts OutputOptions, v any) error {
	format, err := resolveFormat(ctx, OutputOptions{Format: opts.Format}, "")
	if err != nil {
		return err
	}
	return export.WriteSnapshot(ctx.Out, v, format)
}

func pathsEqual(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func printSummary(ctx *Context, format string, args ...any) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, format+"\n", args...)
}

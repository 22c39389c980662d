package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/network"
	"github.com/jimezsa/findyourhome/internal/seen"
	"github.com/jimezsa/findyourhome/internal/source"
)

// ImportCmd reads listings from an HTML page (URL or file) or a JSON catalog.
type ImportCmd struct {
	Source     string `arg:"" help:"URL, HTML file, JSON catalog, or \"builtin\"."`
	Proxies    string `help:"Comma-separated proxy URLs." env:"FINDYOURHOME_PROXIES"`
	Timeout    int    `help:"Request timeout in seconds (default from config)."`
	Seen       string `help:"Path to seen listings JSON file."`
	NewOnly    bool   `help:"Output only unseen listings (requires --seen)."`
	NewOut     string `help:"Write unseen listings JSON to a file (requires --seen)."`
	SeenUpdate bool   `help:"Merge newly discovered listings into the --seen history file after the import (requires --seen)."`
	Save       bool   `help:"Add imported listings to the catalog file."`
	OutputOptions
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := c.validate(); err != nil {
		return err
	}

	proxies, err := config.LoadProxies(c.Proxies)
	if err != nil {
		return err
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		ban := time.Duration(ctx.Config.ProxyBanMinutes) * time.Minute
		rotator, err = network.NewRotator(proxies, ban)
		if err != nil {
			return err
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = ctx.Config.TimeoutSeconds
	}
	src, err := source.Open(c.Source, source.Options{
		Rotator: rotator,
		Timeout: time.Duration(timeout) * time.Second,
	})
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stopIndicator := startImportIndicator(ctx)
	listings, err := src.Listings(runCtx)
	if stopIndicator != nil {
		stopIndicator()
	}
	if err != nil {
		if errors.Is(err, source.ErrNotImplemented) {
			return err
		}
		return fmt.Errorf("import %s: %w", src.Name(), err)
	}
	ctx.Logger.Debug().Str("source", src.Name()).Int("listings", len(listings)).Msg("Import finished")

	var unseen []listing.Listing
	if strings.TrimSpace(c.Seen) != "" {
		history, err := seen.ReadListingsAllowMissing(c.Seen)
		if err != nil {
			return fmt.Errorf("read --seen: %w", err)
		}
		unseen, _ = seen.Diff(listings, history)
	}

	output := listings
	if c.NewOnly {
		output = unseen
	}

	if strings.TrimSpace(c.NewOut) != "" {
		if err := seen.WriteListings(c.NewOut, unseen); err != nil {
			return fmt.Errorf("write --new-out: %w", err)
		}
	}

	if err := writeListings(ctx, c.OutputOptions, output, nil); err != nil {
		return err
	}

	if c.SeenUpdate {
		if err := updateSeenHistory(c.Seen, unseen); err != nil {
			return err
		}
	}

	if c.Save {
		added, err := saveToCatalog(ctx, listings)
		if err != nil {
			return err
		}
		printSummary(ctx, "catalog: added=%d", added)
	}

	summary := listings
	if strings.TrimSpace(c.Seen) != "" {
		summary = unseen
	}
	printSummary(ctx, "%s", formatImportSummary(summary))
	return nil
}

func (c *ImportCmd) validate() error {
	hasSeen := strings.TrimSpace(c.Seen) != ""
	if c.NewOnly && !hasSeen {
		return fmt.Errorf("--new-only requires --seen")
	}
	if strings.TrimSpace(c.NewOut) != "" && !hasSeen {
		return fmt.Errorf("--new-out requires --seen")
	}
	if c.SeenUpdate && !hasSeen {
		return fmt.Errorf("--seen-update requires --seen")
	}
	if strings.TrimSpace(c.NewOut) != "" && pathsEqual(c.Output, c.NewOut) {
		return fmt.Errorf("--new-out path must differ from --output")
	}
	if hasSeen && pathsEqual(c.Output, c.Seen) {
		return fmt.Errorf("--output path must differ from --seen")
	}
	if strings.TrimSpace(c.NewOut) != "" && pathsEqual(c.NewOut, c.Seen) {
		return fmt.Errorf("--new-out path must differ from --seen")
	}
	return nil
}

func updateSeenHistory(seenPath string, input []listing.Listing) error {
	history, err := seen.ReadListingsAllowMissing(seenPath)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	merged, _ := seen.Merge(history, input)
	if err := seen.WriteListings(seenPath, merged); err != nil {
		return fmt.Errorf("write --seen: %w", err)
	}
	return nil
}

func formatImportSummary(listings []listing.Listing) string {
	counts := countListingsBySource(listings)
	if len(counts) == 0 {
		return "summary: new_listings=0 by_source=none"
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.source, count.total))
	}
	return fmt.Sprintf("summary: new_listings=%d by_source=%s", len(listings), strings.Join(parts, ", "))
}

type sourceCount struct {
	source string
	total  int
}

func countListingsBySource(listings []listing.Listing) []sourceCount {
	totals := make(map[string]int, len(listings))
	for _, l := range listings {
		name := strings.ToLower(strings.TrimSpace(l.Source))
		if name == "" {
			name = "unknown"
		}
		totals[name]++
	}

	counts := make([]sourceCount, 0, len(totals))
	for name, total := range totals {
		counts = append(counts, sourceCount{source: name, total: total})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].source < counts[j].source
	})
	return counts
}

func startImportIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KImporting... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/seen"
	"github.com/jimezsa/findyourhome/internal/source"
)

// saveToCatalog merges listings into the catalog file and returns how many
// were added. The result is checked against the catalog schema before it is
// written so the file stays loadable.
func saveToCatalog(ctx *Context, listings []listing.Listing) (int, error) {
	path, err := ctx.Config.CatalogPath(ctx.Catalog)
	if err != nil {
		return 0, err
	}
	existing, err := (&source.File{Path: path, AllowMissing: true}).Listings(context.Background())
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}

	merged, stats := seen.Merge(existing, listings)
	if stats.Added == 0 {
		return 0, nil
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return 0, err
	}
	if _, err := source.DecodeCatalog(data); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	if err := seen.WriteListings(path, merged); err != nil {
		return 0, fmt.Errorf("write catalog: %w", err)
	}
	ctx.Logger.Debug().Str("catalog", path).Int("added", stats.Added).Int("total", stats.TotalOut).Msg("Catalog updated")
	return stats.Added, nil
}

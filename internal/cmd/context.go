package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/seen"
	"github.com/jimezsa/findyourhome/internal/source"
	"github.com/jimezsa/findyourhome/internal/ui"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
	// Catalog is the --catalog flag value.
	Catalog string
}

// Listings returns the built-in listings followed by the catalog file
// entries. A missing catalog file is not an error.
func (c *Context) Listings(ctx context.Context) ([]listing.Listing, error) {
	builtin, err := source.Builtin{}.Listings(ctx)
	if err != nil {
		return nil, err
	}
	path, err := c.Config.CatalogPath(c.Catalog)
	if err != nil {
		return nil, err
	}
	file := &source.File{Path: path, AllowMissing: true}
	extra, err := file.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	c.Logger.Debug().Str("catalog", path).Int("builtin", len(builtin)).Int("catalog_listings", len(extra)).Msg("Listings loaded")
	return seen.Unique(builtin, extra), nil
}

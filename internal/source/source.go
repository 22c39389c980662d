package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/network"
)

var ErrNotImplemented = errors.New("source not implemented")

const (
	KindBuiltin = "builtin"
	KindFile    = "file"
	KindHTML    = "html"
)

type Source interface {
	Name() string
	Listings(ctx context.Context) ([]listing.Listing, error)
}

// Options configures the sources built by Open.
type Options struct {
	Rotator *network.Rotator
	Timeout time.Duration
	// AllowMissing makes a missing catalog file an empty catalog.
	AllowMissing bool
}

// Open picks a source for target: "builtin", a .json catalog path, or an
// http(s) URL or local HTML page to import from.
func Open(target string, opts Options) (Source, error) {
	target = strings.TrimSpace(target)
	if target == "" || strings.EqualFold(target, KindBuiltin) {
		return Builtin{}, nil
	}

	if u, err := url.Parse(target); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			client, err := network.NewClient(opts.Rotator, opts.Timeout)
			if err != nil {
				return nil, err
			}
			return NewHTML(target, client), nil
		case "file":
			target = u.Path
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotImplemented, u.Scheme)
		}
	}

	switch strings.ToLower(filepath.Ext(target)) {
	case ".json":
		return &File{Path: target, AllowMissing: opts.AllowMissing}, nil
	case ".html", ".htm":
		return NewHTML(target, nil), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, target)
	}
}

// Builtin serves the mock catalog shown by the pages.
type Builtin struct{}

func (Builtin) Name() string {
	return KindBuiltin
}

func (Builtin) Listings(context.Context) ([]listing.Listing, error) {
	return listing.Catalog(), nil
}

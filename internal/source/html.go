package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/network"
)

// HTML imports listings from a page, fetched over the network client when
// Target is a URL and read from disk otherwise.
type HTML struct {
	Target string
	client *network.Client
}

func NewHTML(target string, client *network.Client) *HTML {
	return &HTML{Target: target, client: client}
}

func (h *HTML) Name() string {
	return KindHTML
}

func (h *HTML) Listings(ctx context.Context) ([]listing.Listing, error) {
	data, site, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", site, err)
	}
	return ParseDocument(doc, h.Target, site), nil
}

func (h *HTML) load(ctx context.Context) ([]byte, string, error) {
	if u, err := url.Parse(h.Target); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		site := strings.TrimPrefix(u.Hostname(), "www.")
		if h.client == nil {
			return nil, site, errors.New("html source: no network client")
		}
		data, err := h.client.Fetch(ctx, h.Target, nil)
		if err != nil {
			return nil, site, fmt.Errorf("%s: %w", site, err)
		}
		return data, site, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(h.Target)
	if err != nil {
		return nil, "", fmt.Errorf("read html: %w", err)
	}
	return data, filepath.Base(h.Target), nil
}

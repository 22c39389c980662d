package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jimezsa/findyourhome/internal/listing"
)

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchemaJSON)

// File reads a JSON catalog: an array of listings, or an object with a
// "listings" array. The document is checked against the catalog schema before
// decoding.
type File struct {
	Path         string
	AllowMissing bool
}

func (f *File) Name() string {
	return KindFile
}

func (f *File) Listings(ctx context.Context) ([]listing.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if f.AllowMissing && errors.Is(err, os.ErrNotExist) {
			return []listing.Listing{}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return []listing.Listing{}, nil
	}
	return DecodeCatalog(data)
}

// DecodeCatalog validates and decodes catalog JSON.
func DecodeCatalog(data []byte) ([]listing.Listing, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog is not valid JSON: %w", err)
	}
	if err := catalogSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var listings []listing.Listing
	if _, wrapped := doc.(map[string]any); wrapped {
		var envelope struct {
			Listings []listing.Listing `json:"listings"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		listings = envelope.Listings
	} else if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range listings {
		if listings[i].Source == "" {
			listings[i].Source = KindFile
		}
	}
	if listings == nil {
		listings = []listing.Listing{}
	}
	return listings, nil
}

package seen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jimezsa/findyourhome/internal/listing"
)

// ReadListings reads a JSON array of listings. An empty file is an empty
// history.
func ReadListings(path string) ([]listing.Listing, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := []listing.Listing{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if out == nil {
		out = []listing.Listing{}
	}
	return out, nil
}

func ReadListingsAllowMissing(path string) ([]listing.Listing, error) {
	out, err := ReadListings(path)
	if errors.Is(err, os.ErrNotExist) {
		return []listing.Listing{}, nil
	}
	return out, err
}

// WriteListings writes listings as indented JSON.
func WriteListings(path string, listings []listing.Listing) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	if listings == nil {
		listings = []listing.Listing{}
	}
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

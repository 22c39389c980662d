package seen

import (
	"strings"

	"github.com/jimezsa/findyourhome/internal/listing"
)

const keySeparator = "::"

// DiffStats counts the records handled by Diff.
type DiffStats struct {
	TotalNew    int
	TotalSeen   int
	InvalidNew  int
	InvalidSeen int
	Unseen      int
}

func (s DiffStats) InvalidSkipped() int {
	return s.InvalidNew + s.InvalidSeen
}

// MergeStats counts the records handled by Merge.
type MergeStats struct {
	TotalSeen    int
	TotalInput   int
	InvalidSeen  int
	InvalidInput int
	Added        int
	TotalOut     int
}

func (s MergeStats) InvalidSkipped() int {
	return s.InvalidSeen + s.InvalidInput
}

// Normalize lowercases value and collapses whitespace runs.
func Normalize(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}

// Key identifies a listing by normalized title and location. Listings missing
// either have no key.
func Key(l listing.Listing) (string, bool) {
	title := Normalize(l.Title)
	location := Normalize(l.Location)
	if title == "" || location == "" {
		return "", false
	}
	return title + keySeparator + location, true
}

// Diff returns the listings in fresh whose key is absent from history.
// Duplicate keys within fresh are emitted once.
func Diff(fresh []listing.Listing, history []listing.Listing) ([]listing.Listing, DiffStats) {
	stats := DiffStats{TotalNew: len(fresh), TotalSeen: len(history)}

	known := make(map[string]struct{}, len(history))
	for _, l := range history {
		key, ok := Key(l)
		if !ok {
			stats.InvalidSeen++
			continue
		}
		known[key] = struct{}{}
	}

	unseen := make([]listing.Listing, 0, len(fresh))
	for _, l := range fresh {
		key, ok := Key(l)
		if !ok {
			stats.InvalidNew++
			continue
		}
		if _, exists := known[key]; exists {
			continue
		}
		known[key] = struct{}{}
		unseen = append(unseen, l)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends unseen input listings to history. History entries win key
// collisions and keyless history entries are kept as they are.
func Merge(history []listing.Listing, input []listing.Listing) ([]listing.Listing, MergeStats) {
	stats := MergeStats{TotalSeen: len(history), TotalInput: len(input)}

	keys := make(map[string]struct{}, len(history)+len(input))
	out := make([]listing.Listing, 0, len(history)+len(input))

	for _, l := range history {
		key, ok := Key(l)
		if !ok {
			stats.InvalidSeen++
			out = append(out, l)
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, l)
	}

	for _, l := range input {
		key, ok := Key(l)
		if !ok {
			stats.InvalidInput++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, l)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}

// Unique concatenates batches and drops repeated keys, keeping the first
// occurrence. Keyless listings are always kept.
func Unique(batches ...[]listing.Listing) []listing.Listing {
	keys := map[string]struct{}{}
	var out []listing.Listing
	for _, batch := range batches {
		for _, l := range batch {
			key, ok := Key(l)
			if ok {
				if _, exists := keys[key]; exists {
					continue
				}
				keys[key] = struct{}{}
			}
			out = append(out, l)
		}
	}
	return out
}

package match

import (
	"sort"
	"strings"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/seen"
)

// Matcher answers criteria snapshots against a fixed set of listings. Callers
// validate snapshots before querying.
type Matcher struct {
	listings []listing.Listing
}

func New(listings []listing.Listing) *Matcher {
	return &Matcher{listings: append([]listing.Listing(nil), listings...)}
}

// Result is a ranked requirements match.
type Result struct {
	Listing listing.Listing `json:"listing"`
	Score   int             `json:"score"`
}

// Search returns the listings satisfying every set criterion, in catalog
// order.
func (m *Matcher) Search(s criteria.Snapshot) []listing.Listing {
	out := make([]listing.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		if !containsLocation(l, s.Location) {
			continue
		}
		if !matchesType(l, s.PropertyType) {
			continue
		}
		if !atLeast(l.Bedrooms, s.Bedrooms) || !atLeast(l.Bathrooms, s.Bathrooms) {
			continue
		}
		if !withinSize(l, s.MinSize, s.MaxSize) || !withinPrice(l, s.PriceRange) {
			continue
		}
		if !hasAll(l, s.Amenities) {
			continue
		}
		if (s.PetsAllowed && !l.PetsAllowed) || (s.Furnished && !l.Furnished) {
			continue
		}
		if !matchesRental(l, s.RentalType) || !matchesUtilities(l, s.UtilitiesIncluded) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Rank filters by the hard requirements and scores the preferences: one point
// per desired amenity found, one for pets and one for furnished when asked
// for. Results are ordered by score, then by price.
func (m *Matcher) Rank(r criteria.Requirements) []Result {
	locations := SplitLocations(r.PreferredLocations)
	results := make([]Result, 0, len(m.listings))
	for _, l := range m.listings {
		if len(locations) > 0 && !containsAnyLocation(l, locations) {
			continue
		}
		if !matchesType(l, r.PropertyType) {
			continue
		}
		if !atLeast(l.Bedrooms, r.MinBedrooms) || !atLeast(l.Bathrooms, r.MinBathrooms) {
			continue
		}
		if !withinSize(l, r.MinSize, r.MaxSize) || !withinPrice(l, r.PriceRange) {
			continue
		}
		if !matchesRental(l, r.RentalType) || !matchesUtilities(l, r.UtilitiesIncluded) {
			continue
		}
		if !availableWithin(l, r.MoveInDateRange) {
			continue
		}

		score := 0
		for _, amenity := range r.DesiredAmenities {
			if l.HasFeature(amenity) {
				score++
			}
		}
		if r.PetsAllowed && l.PetsAllowed {
			score++
		}
		if r.PreferFurnished && l.Furnished {
			score++
		}
		results = append(results, Result{Listing: l, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Listing.Price < results[j].Listing.Price
	})
	return results
}

// SplitLocations splits the free-text preferred locations on commas and new
// lines.
func SplitLocations(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = seen.Normalize(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsLocation(l listing.Listing, query string) bool {
	query = seen.Normalize(query)
	if query == "" {
		return true
	}
	return strings.Contains(seen.Normalize(l.Location), query)
}

func containsAnyLocation(l listing.Listing, locations []string) bool {
	for _, location := range locations {
		if containsLocation(l, location) {
			return true
		}
	}
	return false
}

func matchesType(l listing.Listing, want criteria.PropertyType) bool {
	if want.Unset() {
		return true
	}
	return l.PropertyType == want
}

func atLeast(have int, text string) bool {
	n, ok := criteria.Number(text)
	if !ok {
		return true
	}
	return float64(have) >= n
}

// withinSize treats an unknown listing size as failing any set bound.
func withinSize(l listing.Listing, minText, maxText string) bool {
	if n, ok := criteria.Number(minText); ok && (l.Size == 0 || float64(l.Size) < n) {
		return false
	}
	if n, ok := criteria.Number(maxText); ok && (l.Size == 0 || float64(l.Size) > n) {
		return false
	}
	return true
}

func withinPrice(l listing.Listing, r criteria.PriceRange) bool {
	return l.Price >= r.Low() && l.Price <= r.High()
}

func hasAll(l listing.Listing, amenities []string) bool {
	for _, amenity := range amenities {
		if !l.HasFeature(amenity) {
			return false
		}
	}
	return true
}

func matchesRental(l listing.Listing, want criteria.RentalType) bool {
	if want == "" || want == criteria.RentalAny {
		return true
	}
	return l.RentalType == want
}

func matchesUtilities(l listing.Listing, want criteria.Utilities) bool {
	if want == "" || want == criteria.UtilitiesAny {
		return true
	}
	return l.UtilitiesIncluded == want
}

// availableWithin applies the move-in window only when both ends are set and
// the listing states a date. Dates compare as YYYY-MM-DD text.
func availableWithin(l listing.Listing, window criteria.DateRange) bool {
	if window.From == "" || window.To == "" || l.AvailableFrom == "" {
		return true
	}
	return l.AvailableFrom >= window.From && l.AvailableFrom <= window.To
}

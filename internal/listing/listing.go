package listing

import (
	"fmt"
	"strings"

	"github.com/jimezsa/findyourhome/internal/criteria"
)

// Listing is the normalized rental listing shown on the pages and returned by
// sources.
type Listing struct {
	ID                string                `json:"id,omitempty"`
	Source            string                `json:"source,omitempty"`
	Title             string                `json:"title"`
	Location          string                `json:"location"`
	Price             int                   `json:"price,omitempty"`
	Currency          string                `json:"currency,omitempty"`
	PriceLabel        string                `json:"price_label,omitempty"`
	PropertyType      criteria.PropertyType `json:"property_type,omitempty"`
	Bedrooms          int                   `json:"bedrooms,omitempty"`
	Bathrooms         int                   `json:"bathrooms,omitempty"`
	Size              int                   `json:"size,omitempty"`
	Amenities         []string              `json:"amenities,omitempty"`
	Features          []string              `json:"features,omitempty"`
	PetsAllowed       bool                  `json:"pets_allowed,omitempty"`
	Furnished         bool                  `json:"furnished,omitempty"`
	RentalType        criteria.RentalType   `json:"rental_type,omitempty"`
	UtilitiesIncluded criteria.Utilities    `json:"utilities_included,omitempty"`
	AvailableFrom     string                `json:"available_from,omitempty"`
	AvailableTo       string                `json:"available_to,omitempty"`
	Description       string                `json:"description,omitempty"`
	Images            []string              `json:"images,omitempty"`
	URL               string                `json:"url,omitempty"`
}

// DisplayPrice returns the price label, or builds one from the amount.
func (l Listing) DisplayPrice() string {
	if label := strings.TrimSpace(l.PriceLabel); label != "" {
		return label
	}
	if l.Price <= 0 {
		return ""
	}
	return fmt.Sprintf("%s%d/month", l.Currency, l.Price)
}

// HasFeature reports whether name appears in the amenities or the feature
// badges, ignoring case.
func (l Listing) HasFeature(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, list := range [][]string{l.Amenities, l.Features} {
		for _, item := range list {
			if strings.EqualFold(strings.TrimSpace(item), name) {
				return true
			}
		}
	}
	return false
}

// Find returns the listing with the given id.
func Find(listings []Listing, id string) (Listing, bool) {
	id = strings.TrimSpace(id)
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

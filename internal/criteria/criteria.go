package criteria

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

// PropertyType is the listing category filter. The empty value means unset.
type PropertyType string

const (
	PropertyAny       PropertyType = "any"
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyStudio    PropertyType = "studio"
	PropertyCondo     PropertyType = "condo"
)

// PropertyTypes lists the concrete types in display order.
var PropertyTypes = []PropertyType{PropertyApartment, PropertyHouse, PropertyStudio, PropertyCondo}

// Unset reports whether the type applies no filter.
func (p PropertyType) Unset() bool {
	return p == "" || p == PropertyAny
}

// Label returns the display label, e.g. "Apartment".
func (p PropertyType) Label() string {
	return Capitalize(string(p))
}

func ParsePropertyType(value string) (PropertyType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", nil
	}
	if value == string(PropertyAny) {
		return PropertyAny, nil
	}
	for _, p := range PropertyTypes {
		if string(p) == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown property type: %s", value)
}

type RentalType string

const (
	RentalAny       RentalType = "any"
	RentalShortTerm RentalType = "short-term"
	RentalLongTerm  RentalType = "long-term"
)

func ParseRentalType(value string) (RentalType, error) {
	switch RentalType(strings.ToLower(strings.TrimSpace(value))) {
	case RentalAny, "":
		return RentalAny, nil
	case RentalShortTerm:
		return RentalShortTerm, nil
	case RentalLongTerm:
		return RentalLongTerm, nil
	default:
		return "", fmt.Errorf("unknown rental type: %s", value)
	}
}

type Utilities string

const (
	UtilitiesAny Utilities = "any"
	UtilitiesYes Utilities = "yes"
	UtilitiesNo  Utilities = "no"
)

func ParseUtilities(value string) (Utilities, error) {
	switch Utilities(strings.ToLower(strings.TrimSpace(value))) {
	case UtilitiesAny, "":
		return UtilitiesAny, nil
	case UtilitiesYes:
		return UtilitiesYes, nil
	case UtilitiesNo:
		return UtilitiesNo, nil
	default:
		return "", fmt.Errorf("unknown utilities option: %s", value)
	}
}

// Amenities is the fixed amenity vocabulary offered by the forms.
var Amenities = []string{"Parking", "Gym", "Pool", "Balcony", "Air Conditioning", "Dishwasher", "Washer/Dryer"}

// CanonicalAmenity matches name against the vocabulary ignoring case and
// surrounding space, and returns the vocabulary spelling.
func CanonicalAmenity(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, amenity := range Amenities {
		if strings.EqualFold(amenity, name) {
			return amenity, true
		}
	}
	return "", false
}

// Toggle removes name from selected when present and appends it otherwise.
// The input slice is never modified.
func Toggle(selected []string, name string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, item := range selected {
		if item == name {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, name)
	}
	return out
}

// SameSet compares two amenity selections ignoring order.
func SameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, item := range a {
		counts[item]++
	}
	for _, item := range b {
		counts[item]--
		if counts[item] < 0 {
			return false
		}
	}
	return true
}

const (
	PriceMin  = 0
	PriceMax  = 10000
	PriceStep = 100
)

// PriceRange is the slider pair (low, high). It marshals as [low, high].
type PriceRange [2]int

func DefaultPriceRange() PriceRange {
	return PriceRange{0, 5000}
}

func (r PriceRange) Low() int  { return r[0] }
func (r PriceRange) High() int { return r[1] }

// ParsePriceRange reads "LOW-HIGH" or "LOW,HIGH".
func ParsePriceRange(value string) (PriceRange, error) {
	value = strings.TrimSpace(value)
	sep := strings.IndexAny(value, "-,")
	if sep <= 0 {
		return PriceRange{}, fmt.Errorf("price range must look like LOW-HIGH: %q", value)
	}
	low, err := strconv.Atoi(strings.TrimSpace(value[:sep]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range low: %w", err)
	}
	high, err := strconv.Atoi(strings.TrimSpace(value[sep+1:]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range high: %w", err)
	}
	return PriceRange{low, high}, nil
}

// DateRange holds two optional calendar dates as YYYY-MM-DD text.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Number parses numeric form text the way a number input would: decimal
// digits with an optional sign, fraction and exponent. Empty, malformed or
// non-finite text reports false.
func Number(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, "xX_") {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

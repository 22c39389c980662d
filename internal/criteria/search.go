package criteria

import "fmt"

// Field names a scalar attribute settable through SetField. Values match the
// form control names.
type Field string

const (
	FieldLocation               Field = "location"
	FieldPropertyType           Field = "propertyType"
	FieldBedrooms               Field = "bedrooms"
	FieldBathrooms              Field = "bathrooms"
	FieldMinSize                Field = "minSize"
	FieldMaxSize                Field = "maxSize"
	FieldRentalType             Field = "rentalType"
	FieldUtilitiesIncluded      Field = "utilitiesIncluded"
	FieldPreferredLocations     Field = "preferredLocations"
	FieldMinBedrooms            Field = "minBedrooms"
	FieldMinBathrooms           Field = "minBathrooms"
	FieldMoveInFrom             Field = "moveInDateRange.from"
	FieldMoveInTo               Field = "moveInDateRange.to"
	FieldAdditionalRequirements Field = "additionalRequirements"
	FieldPetsAllowed            Field = "petsAllowed"
	FieldFurnished              Field = "furnished"
	FieldPreferFurnished        Field = "preferFurnished"
)

// BasicCriteria is the always-visible part of the search widget.
type BasicCriteria struct {
	Location     string       `json:"location"`
	PropertyType PropertyType `json:"propertyType"`
}

// AdvancedCriteria holds the collapsible options. Numeric inputs are kept as
// typed text.
type AdvancedCriteria struct {
	Bedrooms          string     `json:"bedrooms"`
	Bathrooms         string     `json:"bathrooms"`
	MinSize           string     `json:"minSize"`
	MaxSize           string     `json:"maxSize"`
	Amenities         []string   `json:"amenities"`
	PetsAllowed       bool       `json:"petsAllowed"`
	Furnished         bool       `json:"furnished"`
	RentalType        RentalType `json:"rentalType"`
	UtilitiesIncluded Utilities  `json:"utilitiesIncluded"`
}

func InitialBasic() BasicCriteria {
	return BasicCriteria{}
}

func InitialAdvanced() AdvancedCriteria {
	return AdvancedCriteria{
		Amenities:         []string{},
		RentalType:        RentalAny,
		UtilitiesIncluded: UtilitiesAny,
	}
}

// Snapshot is the flat value handed to a consumer on submit.
type Snapshot struct {
	Location          string       `json:"location"`
	PropertyType      PropertyType `json:"propertyType"`
	Bedrooms          string       `json:"bedrooms"`
	Bathrooms         string       `json:"bathrooms"`
	MinSize           string       `json:"minSize"`
	MaxSize           string       `json:"maxSize"`
	Amenities         []string     `json:"amenities"`
	PetsAllowed       bool         `json:"petsAllowed"`
	Furnished         bool         `json:"furnished"`
	RentalType        RentalType   `json:"rentalType"`
	UtilitiesIncluded Utilities    `json:"utilitiesIncluded"`
	PriceRange        PriceRange   `json:"priceRange"`
}

// Search is the advanced search widget state. One instance belongs to one
// form session.
type Search struct {
	Basic        BasicCriteria
	Advanced     AdvancedCriteria
	PriceRange   PriceRange
	ShowAdvanced bool
}

func NewSearch() *Search {
	return &Search{
		Basic:      InitialBasic(),
		Advanced:   InitialAdvanced(),
		PriceRange: DefaultPriceRange(),
	}
}

// SetField overwrites one scalar attribute. The value is stored as given.
func (s *Search) SetField(field Field, value string) error {
	switch field {
	case FieldLocation:
		s.Basic.Location = value
	case FieldPropertyType:
		s.Basic.PropertyType = PropertyType(value)
	case FieldBedrooms:
		s.Advanced.Bedrooms = value
	case FieldBathrooms:
		s.Advanced.Bathrooms = value
	case FieldMinSize:
		s.Advanced.MinSize = value
	case FieldMaxSize:
		s.Advanced.MaxSize = value
	case FieldRentalType:
		s.Advanced.RentalType = RentalType(value)
	case FieldUtilitiesIncluded:
		s.Advanced.UtilitiesIncluded = Utilities(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (s *Search) SetPetsAllowed(v bool) { s.Advanced.PetsAllowed = v }
func (s *Search) SetFurnished(v bool) { s.Advanced.Furnished = v }
func (s *Search) SetRentalType(v RentalType) { s.Advanced.RentalType = v }
func (s *Search) SetUtilitiesIncluded(v Utilities) { s.Advanced.UtilitiesIncluded = v }
func (s *Search) ToggleAdvanced() { s.ShowAdvanced = !s.ShowAdvanced }
func (s *Search) ToggleAmenity(name string) { s.Advanced.Amenities = Toggle(s.Advanced.Amenities, name) }
func (s *Search) SetPriceRange(low, high int) { s.PriceRange = PriceRange{low, high} }
func (s *Search) HasAmenity(name string) bool { return contains(s.Advanced.Amenities, name) }

// Snapshot merges basic criteria, advanced criteria and the price range.
func (s *Search) Snapshot() Snapshot {
	return Snapshot{
		Location:          s.Basic.Location,
		PropertyType:      s.Basic.PropertyType,
		Bedrooms:          s.Advanced.Bedrooms,
		Bathrooms:         s.Advanced.Bathrooms,
		MinSize:           s.Advanced.MinSize,
		MaxSize:           s.Advanced.MaxSize,
		Amenities:         cloneStrings(s.Advanced.Amenities),
		PetsAllowed:       s.Advanced.PetsAllowed,
		Furnished:         s.Advanced.Furnished,
		RentalType:        s.Advanced.RentalType,
		UtilitiesIncluded: s.Advanced.UtilitiesIncluded,
		PriceRange:        s.PriceRange,
	}
}

// Submit hands a snapshot to consume and returns immediately.
func (s *Search) Submit(consume func(Snapshot)) {
	if consume == nil {
		return
	}
	consume(s.Snapshot())
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func contains(values []string, name string) bool {
	for _, v := range values {
		if v == name {
			return true
		}
	}
	return false
}

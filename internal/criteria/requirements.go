package criteria

import "fmt"

// Requirements is the housing-requirements form data. Pets and furnished are
// preferences, not hard filters.
type Requirements struct {
	PreferredLocations     string       `json:"preferredLocations"`
	PropertyType           PropertyType `json:"propertyType"`
	MinBedrooms            string       `json:"minBedrooms"`
	MinBathrooms           string       `json:"minBathrooms"`
	MinSize                string       `json:"minSize"`
	MaxSize                string       `json:"maxSize"`
	PriceRange             PriceRange   `json:"priceRange"`
	DesiredAmenities       []string     `json:"desiredAmenities"`
	PetsAllowed            bool         `json:"petsAllowed"`
	PreferFurnished        bool         `json:"preferFurnished"`
	RentalType             RentalType   `json:"rentalType"`
	UtilitiesIncluded      Utilities    `json:"utilitiesIncluded"`
	MoveInDateRange        DateRange    `json:"moveInDateRange"`
	AdditionalRequirements string       `json:"additionalRequirements"`
}

func InitialRequirements() Requirements {
	return Requirements{
		PropertyType:      PropertyAny,
		PriceRange:        DefaultPriceRange(),
		DesiredAmenities:  []string{},
		RentalType:        RentalAny,
		UtilitiesIncluded: UtilitiesAny,
	}
}

// RequirementsForm owns one Requirements value for a form session.
type RequirementsForm struct {
	data Requirements
}

func NewRequirements() *RequirementsForm {
	return &RequirementsForm{data: InitialRequirements()}
}

// Current exposes the form state to the rendering side.
func (f *RequirementsForm) Current() Requirements {
	return f.Snapshot()
}

func (f *RequirementsForm) SetField(field Field, value string) error {
	switch field {
	case FieldPreferredLocations:
		f.data.PreferredLocations = value
	case FieldPropertyType:
		f.data.PropertyType = PropertyType(value)
	case FieldMinBedrooms:
		f.data.MinBedrooms = value
	case FieldMinBathrooms:
		f.data.MinBathrooms = value
	case FieldMinSize:
		f.data.MinSize = value
	case FieldMaxSize:
		f.data.MaxSize = value
	case FieldRentalType:
		f.data.RentalType = RentalType(value)
	case FieldUtilitiesIncluded:
		f.data.UtilitiesIncluded = Utilities(value)
	case FieldMoveInFrom:
		f.data.MoveInDateRange.From = value
	case FieldMoveInTo:
		f.data.MoveInDateRange.To = value
	case FieldAdditionalRequirements:
		f.data.AdditionalRequirements = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ToggleSwitch flips one of the preference switches.
func (f *RequirementsForm) ToggleSwitch(field Field) error {
	switch field {
	case FieldPetsAllowed:
		f.data.PetsAllowed = !f.data.PetsAllowed
	case FieldPreferFurnished:
		f.data.PreferFurnished = !f.data.PreferFurnished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f *RequirementsForm) ToggleAmenity(name string) {
	f.data.DesiredAmenities = Toggle(f.data.DesiredAmenities, name)
}

func (f *RequirementsForm) SetPriceRange(low, high int) {
	f.data.PriceRange = PriceRange{low, high}
}

// SetMoveInRange replaces both dates at once.
func (f *RequirementsForm) SetMoveInRange(from, to string) {
	f.data.MoveInDateRange = DateRange{From: from, To: to}
}

func (f *RequirementsForm) Snapshot() Requirements {
	out := f.data
	out.DesiredAmenities = cloneStrings(f.data.DesiredAmenities)
	return out
}

func (f *RequirementsForm) Submit(consume func(Requirements)) {
	if consume == nil {
		return
	}
	consume(f.Snapshot())
}

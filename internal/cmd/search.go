package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/match"
)

// SearchCmd is the advanced search widget: every flag sets one criterion.
type SearchCmd struct {
	Location  string   `help:"City, neighborhood, or address."`
	Type      string   `name:"type" help:"Property type: apartment, house, studio, condo, any."`
	Bedrooms  string   `help:"Minimum bedrooms."`
	Bathrooms string   `help:"Minimum bathrooms."`
	MinSize   string   `help:"Minimum size in m²."`
	MaxSize   string   `help:"Maximum size in m²."`
	Amenity   []string `name:"amenity" sep:"none" help:"Required amenity; repeat to toggle several (Parking, Gym, Pool, Balcony, Air Conditioning, Dishwasher, Washer/Dryer)."`
	Pets      bool     `help:"Pets allowed."`
	Furnished bool     `help:"Furnished only."`
	Rental    string   `help:"Rental type: any, short-term, long-term." enum:"any,short-term,long-term" default:"any"`
	Utilities string   `help:"Utilities included: any, yes, no." enum:"any,yes,no" default:"any"`
	Price     string   `help:"Monthly price range LOW-HIGH."`
	Snapshot  bool     `help:"Print the submitted criteria instead of the matching listings."`
	OutputOptions
}

func (c *SearchCmd) Run(ctx *Context) error {
	form, err := c.form(ctx.Config)
	if err != nil {
		return err
	}

	var submitted criteria.Snapshot
	form.Submit(func(s criteria.Snapshot) { submitted = s })
	ctx.Logger.Info().Interface("criteria", submitted).Msg("Submission attempt")

	if err := submitted.Validate(); err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}
	if c.Snapshot {
		return writeSnapshot(ctx, c.OutputOptions, submitted)
	}

	listings, err := ctx.Listings(context.Background())
	if err != nil {
		return err
	}
	results := match.New(listings).Search(submitted)
	if err := writeListings(ctx, c.OutputOptions, results, nil); err != nil {
		return err
	}
	printSummary(ctx, "summary: matches=%d total=%d", len(results), len(listings))
	return nil
}

// form replays the flags onto a fresh search widget. Numeric text is kept as
// typed; only the enumerations and amenity names are checked here.
func (c *SearchCmd) form(cfg config.Config) (*criteria.Search, error) {
	s := criteria.NewSearch()

	propertyType, err := criteria.ParsePropertyType(firstNonEmpty(c.Type, cfg.DefaultType))
	if err != nil {
		return nil, err
	}
	rental, err := criteria.ParseRentalType(c.Rental)
	if err != nil {
		return nil, err
	}
	utilities, err := criteria.ParseUtilities(c.Utilities)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		field criteria.Field
		value string
	}{
		{criteria.FieldLocation, strings.TrimSpace(firstNonEmpty(c.Location, cfg.DefaultLocation))},
		{criteria.FieldPropertyType, string(propertyType)},
		{criteria.FieldBedrooms, c.Bedrooms},
		{criteria.FieldBathrooms, c.Bathrooms},
		{criteria.FieldMinSize, c.MinSize},
		{criteria.FieldMaxSize, c.MaxSize},
	}
	for _, f := range fields {
		if err := s.SetField(f.field, f.value); err != nil {
			return nil, err
		}
	}
	s.SetRentalType(rental)
	s.SetUtilitiesIncluded(utilities)
	s.SetPetsAllowed(c.Pets)
	s.SetFurnished(c.Furnished)

	amenities, err := canonicalAmenities(c.Amenity)
	if err != nil {
		return nil, err
	}
	for _, name := range amenities {
		s.ToggleAmenity(name)
	}

	if raw := firstNonEmpty(c.Price, cfg.DefaultPrice); raw != "" {
		r, err := criteria.ParsePriceRange(raw)
		if err != nil {
			return nil, err
		}
		s.SetPriceRange(r.Low(), r.High())
	}
	return s, nil
}

// canonicalAmenities maps flag values onto the amenity vocabulary. A name
// given twice toggles back off, like clicking a checkbox twice.
func canonicalAmenities(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, value := range values {
		name, ok := criteria.CanonicalAmenity(value)
		if !ok {
			return nil, fmt.Errorf("unknown amenity: %s (choose from %s)", value, strings.Join(criteria.Amenities, ", "))
		}
		out = append(out, name)
	}
	return out, nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/match"
)

// RequirementsCmd is the housing requirements form.
type RequirementsCmd struct {
	Locations    string   `help:"Preferred locations, separated by commas or newlines."`
	Type         string   `name:"type" help:"Property type: any, apartment, house, studio, condo." default:"any"`
	MinBedrooms  string   `help:"Minimum bedrooms."`
	MinBathrooms string   `help:"Minimum bathrooms."`
	MinSize      string   `help:"Minimum size in m²."`
	MaxSize      string   `help:"Maximum size in m²."`
	Price        string   `help:"Monthly price range LOW-HIGH."`
	Amenity      []string `name:"amenity" sep:"none" help:"Desired amenity; repeat for several."`
	Pets         bool     `help:"I have pets."`
	Furnished    bool     `help:"Prefer furnished."`
	Rental       string   `help:"Rental type: any, short-term, long-term." enum:"any,short-term,long-term" default:"any"`
	Utilities    string   `help:"Utilities included: any, yes, no." enum:"any,yes,no" default:"any"`
	MoveInFrom   string   `name:"move-in-from" help:"Earliest move-in date (YYYY-MM-DD)."`
	MoveInTo     string   `name:"move-in-to" help:"Latest move-in date (YYYY-MM-DD)."`
	Notes        string   `help:"Additional requirements."`
	Snapshot     bool     `help:"Print the submitted requirements instead of the ranked listings."`
	OutputOptions
}

func (c *RequirementsCmd) Run(ctx *Context) error {
	form, err := c.form(ctx.Config)
	if err != nil {
		return err
	}

	var submitted criteria.Requirements
	form.Submit(func(r criteria.Requirements) { submitted = r })
	ctx.Logger.Info().Interface("requirements", submitted).Msg("Submission attempt")

	if err := submitted.Validate(); err != nil {
		return fmt.Errorf("invalid requirements: %w", err)
	}
	if c.Snapshot {
		return writeSnapshot(ctx, c.OutputOptions, submitted)
	}

	listings, err := ctx.Listings(context.Background())
	if err != nil {
		return err
	}
	ranked := match.New(listings).Rank(submitted)
	results := make([]listing.Listing, 0, len(ranked))
	scores := make([]int, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, r.Listing)
		scores = append(scores, r.Score)
	}
	if err := writeListings(ctx, c.OutputOptions, results, scores); err != nil {
		return err
	}
	printSummary(ctx, "summary: matches=%d total=%d", len(results), len(listings))
	return nil
}

func (c *RequirementsCmd) form(cfg config.Config) (*criteria.RequirementsForm, error) {
	f := criteria.NewRequirements()

	propertyType, err := criteria.ParsePropertyType(c.Type)
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
		{criteria.FieldPreferredLocations, firstNonEmpty(c.Locations, cfg.DefaultLocation)},
		{criteria.FieldPropertyType, string(propertyType)},
		{criteria.FieldMinBedrooms, c.MinBedrooms},
		{criteria.FieldMinBathrooms, c.MinBathrooms},
		{criteria.FieldMinSize, c.MinSize},
		{criteria.FieldMaxSize, c.MaxSize},
		{criteria.FieldRentalType, string(rental)},
		{criteria.FieldUtilitiesIncluded, string(utilities)},
		{criteria.FieldAdditionalRequirements, c.Notes},
	}
	for _, field := range fields {
		if err := f.SetField(field.field, field.value); err != nil {
			return nil, err
		}
	}
	f.SetMoveInRange(c.MoveInFrom, c.MoveInTo)

	if c.Pets {
		if err := f.ToggleSwitch(criteria.FieldPetsAllowed); err != nil {
			return nil, err
		}
	}
	if c.Furnished {
		if err := f.ToggleSwitch(criteria.FieldPreferFurnished); err != nil {
			return nil, err
		}
	}

	amenities, err := canonicalAmenities(c.Amenity)
	if err != nil {
		return nil, err
	}
	for _, name := range amenities {
		f.ToggleAmenity(name)
	}

	if raw := firstNonEmpty(c.Price, cfg.DefaultPrice); raw != "" {
		r, err := criteria.ParsePriceRange(raw)
		if err != nil {
			return nil, err
		}
		f.SetPriceRange(r.Low(), r.High())
	}
	return f, nil
}

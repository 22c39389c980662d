package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/match"
)

// HomeCmd is the landing page: featured listings, or the quick search when a
// location or type is given.
type HomeCmd struct {
	Location string `help:"Quick search: city, neighborhood, or address."`
	Type     string `name:"type" help:"Quick search: property type."`
	OutputOptions
}

func (c *HomeCmd) Run(ctx *Context) error {
	if c.Location == "" && c.Type == "" {
		return writeListings(ctx, c.OutputOptions, listing.Featured(), nil)
	}

	propertyType, err := criteria.ParsePropertyType(c.Type)
	if err != nil {
		return err
	}
	s := criteria.NewSearch()
	if err := s.SetField(criteria.FieldLocation, c.Location); err != nil {
		return err
	}
	if err := s.SetField(criteria.FieldPropertyType, string(propertyType)); err != nil {
		return err
	}

	var submitted criteria.Snapshot
	s.Submit(func(snap criteria.Snapshot) { submitted = snap })
	ctx.Logger.Info().Interface("criteria", submitted).Msg("Submission attempt")
	if err := submitted.Validate(); err != nil {
		return fmt.Errorf("invalid search: %w", err)
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

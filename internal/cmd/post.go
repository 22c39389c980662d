package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/export"
	"github.com/jimezsa/findyourhome/internal/listing"
)

// PostCmd is the property posting form.
type PostCmd struct {
	Title         string   `help:"Listing title."`
	Description   string   `help:"Listing description."`
	Type          string   `name:"type" help:"Property type: apartment, house, studio, condo." enum:",apartment,house,studio,condo" default:""`
	Location      string   `help:"Address or area."`
	Price         string   `help:"Monthly price."`
	Bedrooms      string   `help:"Bedrooms."`
	Bathrooms     string   `help:"Bathrooms."`
	Size          string   `help:"Size in m²."`
	Amenity       []string `name:"amenity" sep:"none" help:"Amenity; repeat for several."`
	Pets          bool     `help:"Pets allowed."`
	Furnished     bool     `help:"Furnished."`
	Rental        string   `help:"Rental type: short-term or long-term." enum:"short-term,long-term" default:"long-term"`
	Utilities     string   `help:"Utilities included: yes or no." enum:"yes,no" default:"no"`
	AvailableFrom string   `name:"available-from" help:"Available from (YYYY-MM-DD)."`
	AvailableTo   string   `name:"available-to" help:"Available to (YYYY-MM-DD)."`
	Image         []string `name:"image" help:"Image file; only the file name is recorded."`
	Save          bool     `help:"Add the listing to the catalog file."`
	OutputOptions
}

func (c *PostCmd) Run(ctx *Context) error {
	form, err := c.form()
	if err != nil {
		return err
	}
	if missing := form.Missing(); len(missing) > 0 {
		return fmt.Errorf("required field is empty: %s", strings.Join(missing, ", "))
	}
	current := form.Snapshot()
	dates := criteria.DateRange{From: current.AvailableFrom, To: current.AvailableTo}
	if err := dates.Validate(); err != nil {
		return fmt.Errorf("invalid availability: %w", err)
	}

	var submitted listing.PostData
	form.Submit(func(p listing.PostData) { submitted = p })
	ctx.Logger.Info().Interface("property", submitted).Msg("Submission attempt")

	posted := submitted.Listing(uuid.NewString())
	if c.Save {
		added, err := saveToCatalog(ctx, []listing.Listing{posted})
		if err != nil {
			return err
		}
		if added == 0 {
			ctx.UI.Warnf("A listing titled %q in %s is already in the catalog.", posted.Title, posted.Location)
		}
	}

	format, err := resolveFormat(ctx, c.OutputOptions, c.Output)
	if err != nil {
		return err
	}
	if format == export.FormatJSON && c.Output == "" {
		return export.WriteJSON(ctx.Out, posted)
	}
	if err := writeListings(ctx, c.OutputOptions, []listing.Listing{posted}, nil); err != nil {
		return err
	}
	printSummary(ctx, "posted: id=%s", posted.ID)
	return nil
}

func (c *PostCmd) form() (*listing.PostForm, error) {
	f := listing.NewPostForm()
	fields := []struct {
		field listing.PostField
		value string
	}{
		{listing.PostTitle, c.Title},
		{listing.PostDescription, c.Description},
		{listing.PostPropertyType, c.Type},
		{listing.PostLocation, c.Location},
		{listing.PostPrice, c.Price},
		{listing.PostBedrooms, c.Bedrooms},
		{listing.PostBathrooms, c.Bathrooms},
		{listing.PostSize, c.Size},
		{listing.PostAvailableFrom, c.AvailableFrom},
		{listing.PostAvailableTo, c.AvailableTo},
	}
	for _, field := range fields {
		if err := f.SetField(field.field, field.value); err != nil {
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
	if c.Pets {
		if err := f.ToggleSwitch(listing.PostPetsAllowed); err != nil {
			return nil, err
		}
	}
	if c.Furnished {
		if err := f.ToggleSwitch(listing.PostFurnished); err != nil {
			return nil, err
		}
	}
	if err := f.SetRentalType(criteria.RentalType(c.Rental)); err != nil {
		return nil, err
	}
	if err := f.SetUtilities(criteria.Utilities(c.Utilities)); err != nil {
		return nil, err
	}
	for _, image := range c.Image {
		f.AddImage(image)
	}
	return f, nil
}

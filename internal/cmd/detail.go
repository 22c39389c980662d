package cmd

import (
	"context"
	"fmt"

	"github.com/jimezsa/findyourhome/internal/export"
	"github.com/jimezsa/findyourhome/internal/listing"
)

// DetailCmd is the listing detail page.
type DetailCmd struct {
	ID    string `arg:"" optional:"" default:"kreuzberg-1" help:"Listing id."`
	Image int    `help:"Show image N (1-based)."`
	Next  int    `help:"Advance the gallery N times."`
	Prev  int    `help:"Go back in the gallery N times."`
	Tab   string `help:"Tab: description, features, location." enum:"description,features,location" default:"description"`
}

type detailView struct {
	Listing    listing.Listing `json:"listing"`
	Image      string          `json:"image,omitempty"`
	ImageIndex int             `json:"image_index"`
	ImageAlt   string          `json:"image_alt,omitempty"`
	Tab        listing.Tab     `json:"tab"`
	Content    []string        `json:"content"`
}

func (c *DetailCmd) Run(ctx *Context) error {
	listings, err := ctx.Listings(context.Background())
	if err != nil {
		return err
	}
	l, ok := listing.Find(listings, c.ID)
	if !ok {
		return fmt.Errorf("listing not found: %s", c.ID)
	}

	page, err := c.page(l)
	if err != nil {
		return err
	}
	view := newDetailView(page)
	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, view)
	}
	return c.render(ctx, view, page.Facts())
}

// page replays the gallery and tab flags: --image first, then --next, then
// --prev.
func (c *DetailCmd) page(l listing.Listing) (*listing.Detail, error) {
	page := listing.NewDetail(l)
	tab, err := listing.ParseTab(c.Tab)
	if err != nil {
		return nil, err
	}
	page.Tab = tab

	if c.Image > 0 {
		if err := page.Gallery.Select(c.Image - 1); err != nil {
			return nil, fmt.Errorf("--image %d: %w", c.Image, err)
		}
	}
	for i := 0; i < c.Next; i++ {
		page.Gallery.Next()
	}
	for i := 0; i < c.Prev; i++ {
		page.Gallery.Prev()
	}
	return page, nil
}

func newDetailView(page *listing.Detail) detailView {
	image, index := page.Gallery.Current()
	view := detailView{
		Listing:    page.Listing,
		Image:      image,
		ImageIndex: index,
		Tab:        page.Tab,
		Content:    page.TabContent(),
	}
	if image != "" {
		view.ImageAlt = page.ImageAlt()
	}
	return view
}

func (c *DetailCmd) render(ctx *Context, view detailView, facts []string) error {
	l := view.Listing
	ctx.UI.Heading("%s", l.Title)
	lines := []string{l.Location, ""}
	lines = append(lines, facts...)
	if view.Image != "" {
		lines = append(lines, "", fmt.Sprintf("Image %d/%d: %s", view.ImageIndex+1, len(l.Images), ctx.UI.LinkText(view.Image)))
	}
	if len(l.Amenities) > 0 {
		lines = append(lines, "Amenities: "+ctx.UI.Badges(l.Amenities))
	}
	if l.URL != "" {
		lines = append(lines, "URL: "+ctx.UI.LinkText(l.URL))
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(ctx.Out, line); err != nil {
			return err
		}
	}

	ctx.UI.Heading("%s", tabTitle(view.Tab))
	content := view.Content
	if view.Tab == listing.TabFeatures {
		content = badgeRows(ctx, content, 5)
	}
	for _, line := range content {
		if _, err := fmt.Fprintf(ctx.Out, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func badgeRows(ctx *Context, names []string, perRow int) []string {
	var rows []string
	for start := 0; start < len(names); start += perRow {
		end := min(start+perRow, len(names))
		rows = append(rows, ctx.UI.Badges(names[start:end]))
	}
	return rows
}

func tabTitle(tab listing.Tab) string {
	switch tab {
	case listing.TabFeatures:
		return "Features"
	case listing.TabLocation:
		return "Location"
	default:
		return "Description"
	}
}

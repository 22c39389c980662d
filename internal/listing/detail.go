package listing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrImageIndex = errors.New("image index out of range")

// Gallery tracks the image shown by the detail page. Navigation wraps in both
// directions.
type Gallery struct {
	images []string
	index  int
}

func NewGallery(images []string) *Gallery {
	return &Gallery{images: append([]string(nil), images...)}
}

func (g *Gallery) Len() int { return len(g.images) }

func (g *Gallery) Next() {
	if len(g.images) == 0 {
		return
	}
	if g.index == len(g.images)-1 {
		g.index = 0
		return
	}
	g.index++
}

func (g *Gallery) Prev() {
	if len(g.images) == 0 {
		return
	}
	if g.index == 0 {
		g.index = len(g.images) - 1
		return
	}
	g.index--
}

// Select jumps to a thumbnail by zero-based index.
func (g *Gallery) Select(index int) error {
	if index < 0 || index >= len(g.images) {
		return fmt.Errorf("%w: %d (have %d)", ErrImageIndex, index, len(g.images))
	}
	g.index = index
	return nil
}

// Current returns the shown image URL and its index. An empty gallery returns
// "" and 0.
func (g *Gallery) Current() (string, int) {
	if len(g.images) == 0 {
		return "", 0
	}
	return g.images[g.index], g.index
}

type Tab string

const (
	TabDescription Tab = "description"
	TabFeatures    Tab = "features"
	TabLocation    Tab = "location"
)

const MapPlaceholder = "Map placeholder - Integration with map service required"

func ParseTab(value string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabDescription, "":
		return TabDescription, nil
	case TabFeatures:
		return TabFeatures, nil
	case TabLocation:
		return TabLocation, nil
	default:
		return "", fmt.Errorf("unknown tab: %s", value)
	}
}

// Detail is the state of one listing detail page.
type Detail struct {
	Listing Listing
	Gallery *Gallery
	Tab     Tab
}

func NewDetail(l Listing) *Detail {
	return &Detail{
		Listing: l,
		Gallery: NewGallery(l.Images),
		Tab:     TabDescription,
	}
}

// TabContent returns the lines rendered under the active tab.
func (d *Detail) TabContent() []string {
	switch d.Tab {
	case TabFeatures:
		return append([]string(nil), d.Listing.Features...)
	case TabLocation:
		return []string{MapPlaceholder}
	default:
		return []string{d.Listing.Description}
	}
}

// Facts returns the summary card lines.
func (d *Detail) Facts() []string {
	l := d.Listing
	lines := []string{fmt.Sprintf("%s%d /month", l.Currency, l.Price)}
	lines = append(lines,
		fmt.Sprintf("%d Bedrooms", l.Bedrooms),
		fmt.Sprintf("%d Bathrooms", l.Bathrooms),
		fmt.Sprintf("%d m²", l.Size),
	)
	if l.AvailableFrom != "" {
		lines = append(lines, "Available from "+l.AvailableFrom)
	}
	return lines
}

// ImageAlt mirrors the alt text of the main image.
func (d *Detail) ImageAlt() string {
	_, index := d.Gallery.Current()
	return fmt.Sprintf("%s - Image %d", d.Listing.Title, index+1)
}

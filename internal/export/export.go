package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/jimezsa/findyourhome/internal/listing"
	"github.com/jimezsa/findyourhome/internal/ui"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "tsv":
		return FormatTSV, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// Scores adds a score column when it has one entry per listing.
	Scores []int
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

func WriteListings(w io.Writer, listings []listing.Listing, format Format, opts WriteOptions) error {
	if len(opts.Scores) != len(listings) {
		opts.Scores = nil
	}
	switch format {
	case FormatJSON:
		return WriteJSON(w, listings)
	case FormatCSV:
		return writeCSV(w, listings, ',', opts)
	case FormatTSV:
		return writeCSV(w, listings, '\t', opts)
	case FormatMarkdown:
		return writeMarkdown(w, listings, opts)
	default:
		return writeTable(w, listings, opts)
	}
}

// WriteJSON writes v as indented JSON. A nil slice is written as [].
func WriteJSON(w io.Writer, v any) error {
	if listings, ok := v.([]listing.Listing); ok && listings == nil {
		v = []listing.Listing{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, listings []listing.Listing, delim rune, opts WriteOptions) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	header := csvHeader()
	if opts.Scores != nil {
		header = append(header, "score")
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for i, l := range listings {
		row := csvRow(l)
		if opts.Scores != nil {
			row = append(row, strconv.Itoa(opts.Scores[i]))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, listings []listing.Listing, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"id", "title", "location", "price", "type", "beds", "url"}
	if opts.Scores != nil {
		header = append(header, "score")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	output := termenv.NewOutput(w)
	for i, l := range listings {
		row := tableRow(l, output, opts)
		if opts.Scores != nil {
			row = append(row, strconv.Itoa(opts.Scores[i]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, listings []listing.Listing, opts WriteOptions) error {
	if len(listings) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for i, l := range listings {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(l.Title), dash(l.DisplayPrice())),
			fmt.Sprintf("  Location: %s", dash(l.Location)),
		}
		if l.PropertyType != "" {
			lines = append(lines, fmt.Sprintf("  Type: %s", l.PropertyType.Label()))
		}
		if l.Bedrooms > 0 || l.Bathrooms > 0 {
			lines = append(lines, fmt.Sprintf("  Rooms: %d bd / %d ba", l.Bedrooms, l.Bathrooms))
		}
		if l.Size > 0 {
			lines = append(lines, fmt.Sprintf("  Size: %d m²", l.Size))
		}
		if l.AvailableFrom != "" {
			lines = append(lines, fmt.Sprintf("  Available from: %s", l.AvailableFrom))
		}
		if features := append(append([]string{}, l.Amenities...), l.Features...); len(features) > 0 {
			lines = append(lines, fmt.Sprintf("  Features: %s", strings.Join(features, ", ")))
		}
		if u := safe(l.URL); u != "" {
			lines = append(lines, fmt.Sprintf("  URL: [Open listing](<%s>)", u))
		}
		if opts.Scores != nil {
			lines = append(lines, fmt.Sprintf("  Score: %d", opts.Scores[i]))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"id",
		"source",
		"title",
		"location",
		"price",
		"currency",
		"property_type",
		"bedrooms",
		"bathrooms",
		"size",
		"amenities",
		"pets_allowed",
		"furnished",
		"rental_type",
		"utilities_included",
		"available_from",
		"available_to",
		"url",
	}
}

func csvRow(l listing.Listing) []string {
	features := append(append([]string{}, l.Amenities...), l.Features...)
	return []string{
		l.ID,
		l.Source,
		l.Title,
		l.Location,
		strconv.Itoa(l.Price),
		l.Currency,
		string(l.PropertyType),
		strconv.Itoa(l.Bedrooms),
		strconv.Itoa(l.Bathrooms),
		strconv.Itoa(l.Size),
		strings.Join(features, "; "),
		strconv.FormatBool(l.PetsAllowed),
		strconv.FormatBool(l.Furnished),
		string(l.RentalType),
		string(l.UtilitiesIncluded),
		l.AvailableFrom,
		l.AvailableTo,
		l.URL,
	}
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func dash(value string) string {
	if value = safe(value); value == "" {
		return "-"
	}
	return value
}

func tableRow(l listing.Listing, output *termenv.Output, opts WriteOptions) []string {
	link := safe(l.URL)
	displayURL := "-"
	if link != "" {
		displayURL = link
		if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
			displayURL = shortURLLabel(link)
		}
		displayURL = ui.ColorizeLink(output, opts.ColorEnabled, displayURL)
		if opts.Hyperlinks {
			displayURL = hyperlink(link, displayURL)
		}
	}
	beds := "-"
	if l.Bedrooms > 0 {
		beds = strconv.Itoa(l.Bedrooms)
	}
	kind := "-"
	if l.PropertyType != "" {
		kind = string(l.PropertyType)
	}
	return []string{
		dash(l.ID),
		safe(l.Title),
		dash(l.Location),
		dash(l.DisplayPrice()),
		kind,
		beds,
		displayURL,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
)

func TestWriteListingsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteListings(&buf, listing.Featured(), FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}
	if records[0][2] != "title" || records[1][2] != "Cozy Studio Apartment" || records[1][4] != "1200" {
		t.Fatalf("unexpected rows: %v", records[:2])
	}
}

func TestWriteListingsScoresColumn(t *testing.T) {
	var buf bytes.Buffer
	opts := WriteOptions{Scores: []int{3, 1, 0}}
	if err := WriteListings(&buf, listing.Featured(), FormatTSV, opts); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasSuffix(lines[0], "\tscore") || !strings.HasSuffix(lines[1], "\t3") {
		t.Fatalf("score column missing: %q / %q", lines[0], lines[1])
	}

	buf.Reset()
	opts.Scores = []int{1}
	if err := WriteListings(&buf, listing.Featured(), FormatTSV, opts); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	if strings.Contains(buf.String(), "score") {
		t.Fatalf("mismatched scores should be dropped")
	}
}

func TestWriteListingsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteListings(&buf, nil, FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("json = %q, want []", buf.String())
	}
}

func TestWriteListingsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteListings(&buf, []listing.Listing{listing.Kreuzberg()}, FormatMarkdown, WriteOptions{}); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"**Spacious 2-Bedroom Apartment in Kreuzberg** (€1200/month)", "Rooms: 2 bd / 1 ba", "Size: 75 m²"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := WriteListings(&buf, nil, FormatMarkdown, WriteOptions{}); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No results." {
		t.Fatalf("empty markdown = %q", buf.String())
	}
}

func TestWriteTableShortLinks(t *testing.T) {
	var buf bytes.Buffer
	l := listing.Listing{ID: "9", Title: "Loft", URL: "https://www.example.com/listings/9"}
	if err := WriteListings(&buf, []listing.Listing{l}, FormatTable, WriteOptions{Hyperlinks: true, LinkStyle: LinkStyleShort}); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}
	if !strings.Contains(buf.String(), "example.com/listings/9") || !strings.Contains(buf.String(), "\x1b]8;;https://www.example.com/listings/9") {
		t.Fatalf("table = %q", buf.String())
	}
}

func TestWriteSnapshot(t *testing.T) {
	s := criteria.NewSearch()
	_ = s.SetField(criteria.FieldLocation, "Berlin")
	s.ToggleAmenity("Parking")
	s.ToggleAmenity("Gym")
	snap := s.Snapshot()

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap, FormatTSV); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("len(lines) = %d, want 12:\n%s", len(lines), buf.String())
	}
	if lines[0] != "location\tBerlin" || lines[6] != "amenities\tParking, Gym" || lines[11] != "priceRange\t[0,5000]" {
		t.Fatalf("unexpected lines: %q", lines)
	}

	buf.Reset()
	if err := WriteSnapshot(&buf, snap, FormatJSON); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}
	var decoded criteria.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Location != "Berlin" {
		t.Fatalf("decoded = %+v", decoded)
	}

	if err := WriteSnapshot(&buf, []string{"x"}, FormatTable); err == nil {
		t.Fatalf("expected error for non-object value")
	}
}

func TestWriteSnapshotCSVQuotesValues(t *testing.T) {
	r := criteria.InitialRequirements()
	r.PreferredLocations = "Mitte, Berlin"
	r.DesiredAmenities = []string{"Parking", "Gym"}
	r.AdditionalRequirements = "quiet street\nno ground floor"

	for _, tc := range []struct {
		format Format
		comma  rune
	}{{FormatCSV, ','}, {FormatTSV, '\t'}} {
		var buf bytes.Buffer
		if err := WriteSnapshot(&buf, r, tc.format); err != nil {
			t.Fatalf("WriteSnapshot(%s) error = %v", tc.format, err)
		}
		reader := csv.NewReader(&buf)
		reader.Comma = tc.comma
		records, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("%s ReadAll() error = %v\n%s", tc.format, err, buf.String())
		}
		got := map[string]string{}
		for _, record := range records {
			if len(record) != 2 {
				t.Fatalf("%s record %q has %d fields, want 2", tc.format, record, len(record))
			}
			got[record[0]] = record[1]
		}
		want := map[string]string{
			"preferredLocations":     "Mitte, Berlin",
			"desiredAmenities":       "Parking, Gym",
			"priceRange":             "[0,5000]",
			"additionalRequirements": "quiet street\nno ground floor",
		}
		for key, value := range want {
			if got[key] != value {
				t.Fatalf("%s %s = %q, want %q", tc.format, key, got[key], value)
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "markdown": FormatMarkdown, "TSV": FormatTSV} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) error = nil")
	}
}

package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
)

const samplePage = `
<!doctype html>
<html>
<head>
  <script type="application/ld+json">
  {
    "@context": "https://schema.org",
    "@type": "Apartment",
    "name": "Sunny Altbau Flat",
    "url": "/listings/42",
    "numberOfRooms": 3,
    "numberOfBathroomsTotal": 1,
    "floorSize": {"@type": "QuantitativeValue", "value": 82, "unitCode": "MTK"},
    "petsAllowed": "true",
    "address": {"addressLocality": "Berlin", "addressRegion": "Neukölln", "addressCountry": "DE"},
    "amenityFeature": [
      {"@type": "LocationFeatureSpecification", "name": "Balcony", "value": true},
      {"@type": "LocationFeatureSpecification", "name": "Elevator", "value": false}
    ],
    "image": ["https://img.example.com/1.jpg", {"url": "/img/2.jpg"}],
    "offers": {"@type": "Offer", "price": "1450.00", "priceCurrency": "EUR"}
  }
  </script>
  <script type="application/ld+json">
  {
    "@graph": [
      {
        "@type": "ItemList",
        "itemListElement": [
          {"@type": "ListItem", "position": 1, "item": {
            "@type": ["Product", "SingleFamilyResidence"],
            "name": "Family House with Garden",
            "url": "https://homes.example.com/listings/7",
            "address": "Potsdam",
            "offers": [{"@type": "Offer", "price": 2300, "priceCurrency": "EUR"}]
          }}
        ]
      }
    ]
  }
  </script>
  <script type="application/ld+json">{ not json</script>
</head>
<body>
  <article data-listing data-title="Tiny Studio" data-type="studio" data-bedrooms="1">
    <span class="price">€ 780 /month</span>
    <span class="location">Wedding, Berlin</span>
    <span class="amenity">Dishwasher</span>
    <a href="/listings/99">View</a>
  </article>
  <article data-listing><span class="price">$1</span></article>
</body>
</html>`

func parseSample(t *testing.T) []listing.Listing {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("NewDocumentFromReader() error = %v", err)
	}
	return ParseDocument(doc, "https://homes.example.com/search?q=berlin", "homes.example.com")
}

func TestParseDocumentJSONLD(t *testing.T) {
	got := parseSample(t)
	if len(got) != 3 {
		t.Fatalf("len(ParseDocument()) = %d, want 3: %+v", len(got), got)
	}

	flat := got[0]
	if flat.Title != "Sunny Altbau Flat" || flat.URL != "https://homes.example.com/listings/42" {
		t.Fatalf("flat = %+v", flat)
	}
	if flat.Price != 1450 || flat.Currency != "€" {
		t.Fatalf("price = %d %q", flat.Price, flat.Currency)
	}
	if flat.Bedrooms != 3 || flat.Bathrooms != 1 || flat.Size != 82 {
		t.Fatalf("facts = %d/%d/%d", flat.Bedrooms, flat.Bathrooms, flat.Size)
	}
	if flat.Location != "Berlin, Neukölln, DE" || flat.PropertyType != criteria.PropertyApartment {
		t.Fatalf("location/type = %q/%q", flat.Location, flat.PropertyType)
	}
	if !flat.PetsAllowed || len(flat.Features) != 1 || flat.Features[0] != "Balcony" {
		t.Fatalf("pets/features = %v/%v", flat.PetsAllowed, flat.Features)
	}
	if len(flat.Images) != 2 || flat.Images[1] != "https://homes.example.com/img/2.jpg" {
		t.Fatalf("images = %v", flat.Images)
	}

	house := got[1]
	if house.Title != "Family House with Garden" || house.PropertyType != criteria.PropertyHouse {
		t.Fatalf("house = %+v", house)
	}
	if house.Price != 2300 || house.Location != "Potsdam" {
		t.Fatalf("house price/location = %d/%q", house.Price, house.Location)
	}
}

func TestParseDocumentCards(t *testing.T) {
	got := parseSample(t)
	card := got[2]
	if card.Title != "Tiny Studio" || card.PropertyType != criteria.PropertyStudio {
		t.Fatalf("card = %+v", card)
	}
	if card.Price != 780 || card.Currency != "€" || card.Location != "Wedding, Berlin" {
		t.Fatalf("card price/location = %d %q %q", card.Price, card.Currency, card.Location)
	}
	if card.URL != "https://homes.example.com/listings/99" || !card.HasFeature("dishwasher") {
		t.Fatalf("card url/features = %q %v", card.URL, card.Features)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in       string
		amount   int
		currency string
	}{
		{"€1.200 /month", 1200, "€"},
		{"$1,850.00", 1850, "$"},
		{"1450 EUR", 1450, "€"},
		{"price on request", 0, ""},
	}
	for _, tc := range cases {
		amount, currency := ParsePrice(tc.in)
		if amount != tc.amount || currency != tc.currency {
			t.Fatalf("ParsePrice(%q) = %d %q, want %d %q", tc.in, amount, currency, tc.amount, tc.currency)
		}
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://example.com/path/page"
	cases := []struct {
		href string
		want string
	}{
		{"/listings/1", "https://example.com/listings/1"},
		{"https://other.com/a", "https://other.com/a"},
		{"//cdn.example.com/asset", "https://cdn.example.com/asset"},
	}
	for _, tc := range cases {
		if got := absoluteURL(base, tc.href); got != tc.want {
			t.Fatalf("absoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
	if got := absoluteURL("page.html", "/a"); got != "/a" {
		t.Fatalf("absoluteURL() without base scheme = %q", got)
	}
}

func TestFileCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `{"listings": [{"title": "Loft", "location": "Mitte", "price": 1600, "bedrooms": 1, "property_type": "apartment"}]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	src, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if src.Name() != KindFile {
		t.Fatalf("Name() = %q", src.Name())
	}
	got, err := src.Listings(context.Background())
	if err != nil {
		t.Fatalf("Listings() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Loft" || got[0].Source != KindFile || got[0].Price != 1600 {
		t.Fatalf("Listings() = %+v", got)
	}
}

func TestDecodeCatalogRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing location": `[{"title": "Loft"}]`,
		"negative price":   `[{"title": "Loft", "location": "Mitte", "price": -5}]`,
		"unknown type":     `[{"title": "Loft", "location": "Mitte", "property_type": "castle"}]`,
		"bad date":         `[{"title": "Loft", "location": "Mitte", "available_from": "01.09.2024"}]`,
		"not a list":       `"listings"`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCatalog([]byte(content))
			if err == nil || !strings.Contains(err.Error(), "catalog schema validation failed") {
				t.Fatalf("DecodeCatalog() error = %v", err)
			}
		})
	}
	if _, err := DecodeCatalog([]byte(`[`)); err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
}

func TestFileAllowMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	got, err := (&File{Path: missing, AllowMissing: true}).Listings(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("Listings() = %v, %v", got, err)
	}
	if _, err := (&File{Path: missing}).Listings(context.Background()); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestOpen(t *testing.T) {
	src, err := Open("builtin", Options{})
	if err != nil {
		t.Fatalf("Open(builtin) error = %v", err)
	}
	got, err := src.Listings(context.Background())
	if err != nil || len(got) != len(listing.Catalog()) {
		t.Fatalf("builtin Listings() = %d, %v", len(got), err)
	}

	if _, err := Open("ftp://example.com/list", Options{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Open(ftp) error = %v, want ErrNotImplemented", err)
	}
	if _, err := Open("listings.xml", Options{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Open(xml) error = %v, want ErrNotImplemented", err)
	}
}

func TestHTMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(samplePage), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	src, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, err := src.Listings(context.Background())
	if err != nil {
		t.Fatalf("Listings() error = %v", err)
	}
	if len(got) != 3 || got[0].Source != "page.html" {
		t.Fatalf("Listings() = %+v", got)
	}
}

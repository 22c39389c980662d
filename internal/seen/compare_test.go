package seen

import (
	"testing"

	"github.com/jimezsa/findyourhome/internal/listing"
)

func TestNormalize(t *testing.T) {
	got := Normalize("  Spacious   2BR\tHouse  ")
	if got != "spacious 2br house" {
		t.Fatalf("Normalize() = %q", got)
	}
}

func TestKey(t *testing.T) {
	got, ok := Key(listing.Listing{Title: " Modern 1BR Loft ", Location: "City   Center"})
	if !ok {
		t.Fatalf("expected valid key")
	}
	if got != "modern 1br loft::city center" {
		t.Fatalf("Key() = %q", got)
	}
	if _, ok := Key(listing.Listing{Title: "No location"}); ok {
		t.Fatalf("expected invalid key without location")
	}
}

func TestDiff(t *testing.T) {
	fresh := []listing.Listing{
		{Title: "Sunny Flat", Location: "Mitte", URL: "https://example.com/1"},
		{Title: "sunny  flat", Location: " mitte ", URL: "https://example.com/1-dupe"},
		{Title: "Quiet Room", Location: "Wedding", URL: "https://example.com/2"},
		{Title: "", Location: "Invalid"},
	}
	history := []listing.Listing{
		{Title: "sunny flat", Location: "mitte"},
		{Title: "No Location", Location: "  "},
	}

	unseen, stats := Diff(fresh, history)
	if len(unseen) != 1 || unseen[0].Title != "Quiet Room" {
		t.Fatalf("unseen = %+v", unseen)
	}
	if stats.TotalNew != 4 || stats.TotalSeen != 2 {
		t.Fatalf("totals = %+v", stats)
	}
	if stats.InvalidNew != 1 || stats.InvalidSeen != 1 || stats.InvalidSkipped() != 2 {
		t.Fatalf("invalid counts = %+v", stats)
	}
	if stats.Unseen != 1 {
		t.Fatalf("Unseen = %d, want 1", stats.Unseen)
	}
}

func TestMergeAndIdempotency(t *testing.T) {
	history := []listing.Listing{
		{Title: "Sunny Flat", Location: "Mitte", Price: 900},
		{Title: "", Location: "Unknown"},
	}
	input := []listing.Listing{
		{Title: "Sunny Flat", Location: "Mitte", Price: 1000},
		{Title: "Quiet Room", Location: "Wedding"},
		{Title: "Broken"},
	}

	merged, stats := Merge(history, input)
	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].Price != 900 {
		t.Fatalf("history entry should win collisions, got price %d", merged[0].Price)
	}
	if stats.Added != 1 || stats.InvalidSeen != 1 || stats.InvalidInput != 1 || stats.TotalOut != 3 {
		t.Fatalf("stats = %+v", stats)
	}

	again, statsAgain := Merge(merged, input)
	if len(again) != len(merged) || statsAgain.Added != 0 {
		t.Fatalf("second merge added %d (len %d)", statsAgain.Added, len(again))
	}
}

func TestUnique(t *testing.T) {
	got := Unique(
		[]listing.Listing{{Title: "A", Location: "X"}, {Title: "Keyless"}},
		[]listing.Listing{{Title: "a", Location: "x"}, {Title: "Keyless"}, {Title: "B", Location: "Y"}},
	)
	if len(got) != 4 {
		t.Fatalf("len(Unique()) = %d, want 4", len(got))
	}
	if got[3].Title != "B" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

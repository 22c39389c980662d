package seen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jimezsa/findyourhome/internal/listing"
)

func TestReadWriteListings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")

	want := []listing.Listing{listing.Kreuzberg()}
	if err := WriteListings(path, want); err != nil {
		t.Fatalf("WriteListings() error = %v", err)
	}

	got, err := ReadListings(path)
	if err != nil {
		t.Fatalf("ReadListings() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("read back mismatch (-want +got):\n%s", diff)
	}
}

func TestReadListingsAllowMissing(t *testing.T) {
	got, err := ReadListingsAllowMissing(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("ReadListingsAllowMissing() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %#v", got)
	}
}

func TestReadListingsEmptyAndBroken(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got, err := ReadListings(empty); err != nil || len(got) != 0 {
		t.Fatalf("ReadListings(empty) = %v, %v", got, err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("[{"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := ReadListingsAllowMissing(broken); err == nil {
		t.Fatalf("expected decode error")
	}
}

package criteria

import (
	"errors"
	"testing"
)

func TestSnapshotValidate(t *testing.T) {
	base := NewSearch().Snapshot()

	cases := []struct {
		name string
		edit func(*Snapshot)
		want error
	}{
		{"defaults", func(*Snapshot) {}, nil},
		{"inverted price", func(s *Snapshot) { s.PriceRange = PriceRange{2000, 1000} }, ErrInvertedRange},
		{"price above slider", func(s *Snapshot) { s.PriceRange = PriceRange{0, 20000} }, ErrOutOfBounds},
		{"inverted size", func(s *Snapshot) { s.MinSize, s.MaxSize = "90", "40" }, ErrInvertedRange},
		{"malformed size ignored", func(s *Snapshot) { s.MinSize, s.MaxSize = "big", "40" }, nil},
		{"negative bedrooms", func(s *Snapshot) { s.Bedrooms = "-2" }, ErrOutOfBounds},
		{"equal sizes", func(s *Snapshot) { s.MinSize, s.MaxSize = "50", "50" }, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.edit(&snap)
			err := snap.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRequirementsValidateDates(t *testing.T) {
	r := InitialRequirements()
	r.MoveInDateRange = DateRange{From: "2024-10-01", To: "2024-09-01"}
	if err := r.Validate(); !errors.Is(err, ErrInvertedRange) {
		t.Fatalf("Validate() error = %v, want ErrInvertedRange", err)
	}

	r.MoveInDateRange = DateRange{From: "01/09/2024"}
	if err := r.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Validate() error = %v, want ErrInvalidDate", err)
	}

	r.MoveInDateRange = DateRange{To: "2024-09-01"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidateNamesFirstNegativeCount(t *testing.T) {
	snap := NewSearch().Snapshot()
	snap.Bedrooms, snap.Bathrooms = "-1", "-2"
	for i := 0; i < 20; i++ {
		err := snap.Validate()
		if err == nil || err.Error() != "value out of bounds: bedrooms cannot be negative" {
			t.Fatalf("Validate() error = %v, want bedrooms reported", err)
		}
	}
}

func TestNumberRejectsNonDecimalText(t *testing.T) {
	for _, text := range []string{"NaN", "nan", "Inf", "-Infinity", "0x1p4", "1_000", "1e400", "", "  "} {
		if n, ok := Number(text); ok {
			t.Fatalf("Number(%q) = %v, true; want false", text, n)
		}
	}
	for text, want := range map[string]float64{"2": 2, " 1.5 ": 1.5, "-3": -3, "1e2": 100} {
		if n, ok := Number(text); !ok || n != want {
			t.Fatalf("Number(%q) = %v, %v; want %v", text, n, ok, want)
		}
	}

	snap := NewSearch().Snapshot()
	snap.MinSize = "NaN"
	if err := snap.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want NaN ignored like other malformed text", err)
	}
}

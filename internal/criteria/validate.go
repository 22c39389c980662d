package criteria

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvertedRange = errors.New("range lower bound exceeds upper bound")
	ErrOutOfBounds   = errors.New("value out of bounds")
	ErrInvalidDate   = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// Validate checks the range invariants of a price pair.
func (r PriceRange) Validate() error {
	if r[0] < PriceMin || r[1] > PriceMax {
		return fmt.Errorf("%w: price range [%d, %d] outside [%d, %d]", ErrOutOfBounds, r[0], r[1], PriceMin, PriceMax)
	}
	if r[0] > r[1] {
		return fmt.Errorf("%w: price %d > %d", ErrInvertedRange, r[0], r[1])
	}
	return nil
}

// Validate checks both dates parse and are ordered. Unset dates pass.
func (r DateRange) Validate() error {
	var from, to time.Time
	var err error
	if r.From != "" {
		if from, err = time.Parse(dateLayout, r.From); err != nil {
			return fmt.Errorf("%w: from %q", ErrInvalidDate, r.From)
		}
	}
	if r.To != "" {
		if to, err = time.Parse(dateLayout, r.To); err != nil {
			return fmt.Errorf("%w: to %q", ErrInvalidDate, r.To)
		}
	}
	if r.From != "" && r.To != "" && from.After(to) {
		return fmt.Errorf("%w: move-in %s > %s", ErrInvertedRange, r.From, r.To)
	}
	return nil
}

// Validate is called by consumers before querying; the model never rejects a
// submission itself.
func (s Snapshot) Validate() error {
	if err := s.PriceRange.Validate(); err != nil {
		return err
	}
	if err := validateCounts(count{"bedrooms", s.Bedrooms}, count{"bathrooms", s.Bathrooms}); err != nil {
		return err
	}
	return validateSize(s.MinSize, s.MaxSize)
}

func (r Requirements) Validate() error {
	if err := r.PriceRange.Validate(); err != nil {
		return err
	}
	if err := validateCounts(count{"minBedrooms", r.MinBedrooms}, count{"minBathrooms", r.MinBathrooms}); err != nil {
		return err
	}
	if err := validateSize(r.MinSize, r.MaxSize); err != nil {
		return err
	}
	return r.MoveInDateRange.Validate()
}

type count struct {
	name string
	text string
}

// validateCounts reports the first negative count in argument order.
func validateCounts(counts ...count) error {
	for _, c := range counts {
		if n, ok := Number(c.text); ok && n < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrOutOfBounds, c.name)
		}
	}
	return nil
}

func validateSize(minText, maxText string) error {
	minSize, minOK := Number(minText)
	maxSize, maxOK := Number(maxText)
	if (minOK && minSize < 0) || (maxOK && maxSize < 0) {
		return fmt.Errorf("%w: size cannot be negative", ErrOutOfBounds)
	}
	if minOK && maxOK && minSize > maxSize {
		return fmt.Errorf("%w: size %s > %s", ErrInvertedRange, minText, maxText)
	}
	return nil
}

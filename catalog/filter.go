package catalog

import (
	"fmt"
	"slices"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/functional"
	"github.com/auth-platform/phonegen/region"
)

// FilterQuery narrows a region list by trunk-prefix presence and format
// availability.
type FilterQuery struct {
	// Regions is the candidate list. Nil means every catalog region.
	// Candidates unknown to the catalog never pass the filter.
	Regions []region.Region

	// RequireNationalPrefix keeps only regions declaring a national
	// trunk-dialing prefix.
	RequireNationalPrefix bool

	// RequiredFormats keeps only regions supporting every listed format.
	RequiredFormats []format.Name
}

// InvalidFormatError reports a required format outside the fixed vocabulary.
type InvalidFormatError struct {
	Name format.Name
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("phonegen: invalid required number format %q", string(e.Name))
}

// Unwrap makes the error match format.ErrInvalidFormatName via errors.Is.
func (e *InvalidFormatError) Unwrap() error {
	return format.ErrInvalidFormatName
}

// FilterRegions returns a lazy, restartable sequence of the candidate
// regions satisfying the query, preserving candidate order. Format names are
// validated eagerly, before any iteration happens.
func (c *Catalog) FilterRegions(q FilterQuery) (functional.Iterator[region.Region], error) {
	for _, name := range q.RequiredFormats {
		if !format.Valid(name) {
			return nil, &InvalidFormatError{Name: name}
		}
	}

	candidates := q.Regions
	if candidates == nil {
		candidates = c.regions
	}
	required := slices.Clone(q.RequiredFormats)

	return func(yield func(region.Region) bool) {
		for _, r := range candidates {
			rec, known := c.records[r]
			if !known {
				continue
			}
			if q.RequireNationalPrefix && !rec.HasNationalPrefix() {
				continue
			}
			supported := true
			for _, name := range required {
				if _, ok := rec.Patterns[name]; !ok {
					supported = false
					break
				}
			}
			if !supported {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}, nil
}

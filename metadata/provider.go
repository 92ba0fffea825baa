// Package metadata defines the read-only phone-number metadata boundary the
// catalog is built from.
package metadata

import (
	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/region"
)

// Record is the per-region metadata snapshot. Patterns holds one
// national-number pattern per named format the region actually advertises;
// a missing key means the format is not generatable for the region, never an
// empty pattern.
type Record struct {
	ID             string
	CountryCode    int
	NationalPrefix string
	Patterns       map[format.Name]string
}

// HasNationalPrefix reports whether the region declares a national
// trunk-dialing prefix.
func (r Record) HasNationalPrefix() bool {
	return r.NationalPrefix != ""
}

// Pattern returns the national-number pattern for a named format.
func (r Record) Pattern(name format.Name) (string, bool) {
	pattern, ok := r.Patterns[name]
	return pattern, ok
}

// Provider is the upstream source of phone-number metadata. Implementations
// must be pure, complete, and fully loaded before catalog construction
// begins; the catalog reads each region's record exactly once.
type Provider interface {
	// Regions returns every known (country code, region code) pair in a
	// stable order.
	Regions() []region.Region

	// MetadataFor returns the record for one region.
	MetadataFor(r region.Region) (Record, bool)
}

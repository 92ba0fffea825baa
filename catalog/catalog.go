// Package catalog indexes phone-number metadata by region for generation.
//
// A Catalog is built exactly once from a metadata.Provider and is read-only
// afterwards, so one instance can be shared by any number of concurrent
// strategy instances.
package catalog

import (
	"maps"
	"slices"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/metadata"
	"github.com/auth-platform/phonegen/region"
)

// Entry is one row of the flattened (region, supported format) join across
// all regions.
type Entry struct {
	Region  region.Region
	Format  format.Name
	Pattern string
}

// Catalog maps every known (country code, region code) pair to its supported
// named formats and trunk-prefix metadata.
type Catalog struct {
	regions      []region.Region
	records      map[region.Region]metadata.Record
	entries      []Entry
	availability map[format.Name][]region.Region
	countryCodes map[int]struct{}
	regionCodes  map[string]struct{}
}

// Build constructs the catalog from a fully loaded provider. Each region's
// record is fetched once; per-format entries are laid out in vocabulary
// order so the result is deterministic for a given provider. Regions with no
// supported formats stay in the catalog (with an empty pattern map) but are
// never default draw targets.
func Build(p metadata.Provider) *Catalog {
	c := &Catalog{
		records:      make(map[region.Region]metadata.Record),
		availability: make(map[format.Name][]region.Region),
		countryCodes: make(map[int]struct{}),
		regionCodes:  make(map[string]struct{}),
	}
	vocabulary := format.All()
	for _, r := range p.Regions() {
		rec, ok := p.MetadataFor(r)
		if !ok {
			continue
		}
		rec.Patterns = maps.Clone(rec.Patterns)
		if rec.Patterns == nil {
			rec.Patterns = make(map[format.Name]string)
		}
		c.regions = append(c.regions, r)
		c.records[r] = rec
		c.countryCodes[r.CountryCode] = struct{}{}
		c.regionCodes[r.RegionCode] = struct{}{}
		for _, name := range vocabulary {
			pattern, supported := rec.Patterns[name]
			if !supported {
				continue
			}
			c.entries = append(c.entries, Entry{Region: r, Format: name, Pattern: pattern})
			c.availability[name] = append(c.availability[name], r)
		}
	}
	return c
}

// Regions returns every catalog region in provider order.
func (c *Catalog) Regions() []region.Region {
	return slices.Clone(c.regions)
}

// Record returns the metadata record for one region. The record's pattern
// map is shared and must be treated as read-only.
func (c *Catalog) Record(r region.Region) (metadata.Record, bool) {
	rec, ok := c.records[r]
	return rec, ok
}

// Has reports whether the region is known to the catalog.
func (c *Catalog) Has(r region.Region) bool {
	_, ok := c.records[r]
	return ok
}

// Entries returns the flattened (region, format, pattern) join.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// RegionsFor returns the regions advertising the named format, in catalog
// order.
func (c *Catalog) RegionsFor(name format.Name) []region.Region {
	return slices.Clone(c.availability[name])
}

// FormatsFor returns the named formats available in at least one of the
// given regions, in vocabulary order. No regions means the whole catalog;
// regions unknown to the catalog contribute nothing.
func (c *Catalog) FormatsFor(regions ...region.Region) []format.Name {
	candidates := regions
	if len(candidates) == 0 {
		candidates = c.regions
	}
	seen := make(map[format.Name]struct{})
	for _, r := range candidates {
		rec, ok := c.records[r]
		if !ok {
			continue
		}
		for name := range rec.Patterns {
			seen[name] = struct{}{}
		}
	}
	var out []format.Name
	for _, name := range format.All() {
		if _, ok := seen[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of regions in the catalog.
func (c *Catalog) Len() int {
	return len(c.regions)
}

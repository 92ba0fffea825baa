package metadata

import (
	"maps"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/region"
)

// StaticEntry pairs a region with its metadata record for StaticProvider
// construction.
type StaticEntry struct {
	Region region.Region
	Record Record
}

// StaticProvider serves metadata from a fixed, in-memory set of records. It
// backs hermetic tests and callers with custom numbering plans.
type StaticProvider struct {
	regions []region.Region
	records map[region.Region]Record
}

// NewStaticProvider builds a provider from entries, preserving entry order.
// A region listed twice keeps its first record. Pattern maps are copied, so
// later mutation of the inputs does not leak into the provider.
func NewStaticProvider(entries []StaticEntry) *StaticProvider {
	p := &StaticProvider{records: make(map[region.Region]Record, len(entries))}
	for _, entry := range entries {
		if _, seen := p.records[entry.Region]; seen {
			continue
		}
		rec := entry.Record
		rec.Patterns = maps.Clone(rec.Patterns)
		if rec.Patterns == nil {
			rec.Patterns = make(map[format.Name]string)
		}
		p.regions = append(p.regions, entry.Region)
		p.records[entry.Region] = rec
	}
	return p
}

// Regions returns every configured region in entry order.
func (p *StaticProvider) Regions() []region.Region {
	out := make([]region.Region, len(p.regions))
	copy(out, p.regions)
	return out
}

// MetadataFor returns the record for one region.
func (p *StaticProvider) MetadataFor(r region.Region) (Record, bool) {
	rec, ok := p.records[r]
	return rec, ok
}

// Package strategy implements the phone-number generation strategy: per
// draw, select a region, select a named format available for that region,
// and produce a digit string matching the format's national-number pattern.
//
// The strategy owns no randomness. All sampling goes through the Sampler
// interface, implemented by the rapid and gopter adapters in this package,
// so replay and shrinking stay with the host engine.
package strategy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/auth-platform/phonegen/catalog"
	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/region"
)

// Chooser supplies uniform selection from a finite set. Implementations must
// be deterministic under the host engine's replay input.
type Chooser interface {
	// Choose returns an index in [0, n). n is always at least 1. The label
	// identifies the choice point for engines that track draws by name.
	Choose(n int, label string) int
}

// Sampler is the full sampling-engine surface a draw consumes.
type Sampler interface {
	Chooser

	// DigitStringMatching returns a string that fully matches pattern and
	// contains only the digits '0' through '9', even where the pattern
	// would admit a wider alphabet.
	DigitStringMatching(pattern string, label string) string
}

// Strategy sentinel errors.
var (
	// ErrInvalidRegion means a requested region is not in the catalog.
	ErrInvalidRegion = errors.New("phonegen: invalid region")

	// ErrEmptySearchSpace means no (region, format) pair can be drawn.
	ErrEmptySearchSpace = errors.New("phonegen: empty search space")
)

// InvalidRegionError reports a requested region missing from the catalog.
type InvalidRegionError struct {
	Region region.Region
}

// Error implements the error interface.
func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("phonegen: region %s is not in the catalog", e.Region)
}

// Unwrap makes the error match ErrInvalidRegion via errors.Is.
func (e *InvalidRegionError) Unwrap() error {
	return ErrInvalidRegion
}

// EmptySearchSpaceError reports a draw that found no generatable
// (region, format) pair. When Region is the zero value the whole resolved
// search space was empty; otherwise the sampled region supports none of the
// requested formats.
type EmptySearchSpaceError struct {
	Region region.Region
}

// Error implements the error interface.
func (e *EmptySearchSpaceError) Error() string {
	if e.Region == (region.Region{}) {
		return "phonegen: no region supports any of the requested number formats"
	}
	return fmt.Sprintf("phonegen: region %s supports none of the requested number formats", e.Region)
}

// Unwrap makes the error match ErrEmptySearchSpace via errors.Is.
func (e *EmptySearchSpaceError) Unwrap() error {
	return ErrEmptySearchSpace
}

// Strategy draws digit strings for randomly selected (region, format)
// pairs. Region and format sets are resolved once at construction and are
// immutable afterwards; the last-selection diagnostics are the only mutable
// state and are not safe for concurrent draws. Use one Strategy per
// goroutine, or share only the catalog.
type Strategy struct {
	catalog *catalog.Catalog
	regions []region.Region
	formats []format.Name
	entries []catalog.Entry

	lastRegion region.Region
	lastFormat format.Name
	drawn      bool
}

type options struct {
	regions    []region.Region
	formats    []format.Name
	regionsSet bool
	formatsSet bool
}

// Option configures strategy construction.
type Option func(*options) error

// WithRegions restricts generation to the given regions.
func WithRegions(regions ...region.Region) Option {
	return func(o *options) error {
		o.regions = append(o.regions, regions...)
		o.regionsSet = true
		return nil
	}
}

// WithRegionStrings restricts generation to regions given as loose
// "<calling code>:<region code>" strings, e.g. "1:US". Normalization happens
// here at the boundary; malformed strings fail construction.
func WithRegionStrings(specs ...string) Option {
	return func(o *options) error {
		regions, err := region.ParseAll(specs)
		if err != nil {
			return err
		}
		o.regions = append(o.regions, regions...)
		o.regionsSet = true
		return nil
	}
}

// WithFormats restricts generation to the given named number formats.
func WithFormats(names ...format.Name) Option {
	return func(o *options) error {
		for _, name := range names {
			if !format.Valid(name) {
				return &format.InvalidNameError{Label: string(name)}
			}
			o.formats = append(o.formats, name)
		}
		o.formatsSet = true
		return nil
	}
}

// WithFormatLabels is WithFormats for loose labels such as "Toll Free".
func WithFormatLabels(labels ...string) Option {
	return func(o *options) error {
		names, err := format.ParseAll(labels)
		if err != nil {
			return err
		}
		o.formats = append(o.formats, names...)
		o.formatsSet = true
		return nil
	}
}

// New builds a Strategy over cat. Every validation derivable from static
// inputs happens here: unknown format names, regions absent from the
// catalog, and a region/format combination with nothing to generate all fail
// construction, never a draw. When no regions are given the resolved
// universe is every catalog region supporting at least one resolved format,
// so a default-constructed strategy has no dead-end draw targets.
func New(cat *catalog.Catalog, opts ...Option) (*Strategy, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	formats := dedupe(o.formats)
	if !o.formatsSet {
		formats = format.All()
	}

	var regions []region.Region
	if o.regionsSet {
		regions = dedupe(o.regions)
		for _, r := range regions {
			if !cat.Has(r) {
				return nil, &InvalidRegionError{Region: r}
			}
		}
	} else {
		for _, r := range cat.Regions() {
			rec, _ := cat.Record(r)
			for _, name := range formats {
				if _, ok := rec.Patterns[name]; ok {
					regions = append(regions, r)
					break
				}
			}
		}
	}

	s := &Strategy{catalog: cat, regions: regions, formats: formats}
	for _, entry := range cat.Entries() {
		if slices.Contains(regions, entry.Region) && slices.Contains(formats, entry.Format) {
			s.entries = append(s.entries, entry)
		}
	}
	// A search space that is empty for every region is derivable right
	// here, so it fails construction. Draws can still fail for one sampled
	// region whose formats miss the requested set.
	if len(s.entries) == 0 {
		return nil, &EmptySearchSpaceError{}
	}
	return s, nil
}

// Select samples one region from the resolved region set, then one format
// from the intersection of that region's supported formats with the resolved
// format set. The intersection keeps vocabulary order, so format choice is
// replay-stable. An empty intersection is a draw-time failure, never a
// silent re-sample. The selection is recorded for LastSelection.
func (s *Strategy) Select(c Chooser) (catalog.Entry, error) {
	if len(s.regions) == 0 {
		return catalog.Entry{}, &EmptySearchSpaceError{}
	}
	r := s.regions[c.Choose(len(s.regions), "region")]
	rec, _ := s.catalog.Record(r)

	// Walk the vocabulary, not the caller-supplied format list, so the
	// intersection order never depends on option order.
	var available []format.Name
	for _, name := range format.All() {
		if !slices.Contains(s.formats, name) {
			continue
		}
		if _, ok := rec.Patterns[name]; ok {
			available = append(available, name)
		}
	}
	if len(available) == 0 {
		return catalog.Entry{}, &EmptySearchSpaceError{Region: r}
	}

	name := available[c.Choose(len(available), "format")]
	pattern, _ := rec.Pattern(name)
	s.lastRegion, s.lastFormat, s.drawn = r, name, true
	return catalog.Entry{Region: r, Format: name, Pattern: pattern}, nil
}

// Draw produces one digit string fully matching the pattern of a freshly
// selected (region, format) pair.
func (s *Strategy) Draw(smp Sampler) (string, error) {
	entry, err := s.Select(smp)
	if err != nil {
		return "", err
	}
	return smp.DigitStringMatching(entry.Pattern, "number"), nil
}

// LastSelection reports the region and format of the most recent successful
// selection. The third return is false before the first draw. Diagnostic
// only; overwritten every draw and not safe for concurrent readers.
func (s *Strategy) LastSelection() (region.Region, format.Name, bool) {
	return s.lastRegion, s.lastFormat, s.drawn
}

// Regions returns the resolved region set.
func (s *Strategy) Regions() []region.Region {
	return slices.Clone(s.regions)
}

// Formats returns the resolved format set.
func (s *Strategy) Formats() []format.Name {
	return slices.Clone(s.formats)
}

// AvailableEntries returns the effective search space: every catalog entry
// whose region and format are both in the resolved sets.
func (s *Strategy) AvailableEntries() []catalog.Entry {
	return slices.Clone(s.entries)
}

func dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

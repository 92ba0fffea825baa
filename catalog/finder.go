package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/auth-platform/phonegen/region"
)

// FinderQuery selects regions by country calling code or by ISO region code.
// Exactly one selector must be set.
type FinderQuery struct {
	CountryCodes []int
	RegionCodes  []string
}

// Finder sentinel errors.
var (
	// ErrAmbiguousFinderQuery means both selectors were supplied.
	ErrAmbiguousFinderQuery = errors.New("phonegen: cannot select by both country codes and region codes")

	// ErrEmptyFinderQuery means neither selector was supplied.
	ErrEmptyFinderQuery = errors.New("phonegen: finder query needs country codes or region codes")
)

// UnknownCountryCodeError reports a calling code absent from the catalog.
type UnknownCountryCodeError struct {
	Code int
}

// Error implements the error interface.
func (e *UnknownCountryCodeError) Error() string {
	return fmt.Sprintf("phonegen: unknown country calling code %d", e.Code)
}

// UnknownRegionCodeError reports a region code absent from the catalog.
type UnknownRegionCodeError struct {
	Code string
}

// Error implements the error interface.
func (e *UnknownRegionCodeError) Error() string {
	return fmt.Sprintf("phonegen: unknown region code %q", e.Code)
}

// FindRegions translates country codes or region codes into catalog regions,
// preserving catalog order. Supplying both selectors is ambiguous and fails
// with ErrAmbiguousFinderQuery; supplying neither fails with
// ErrEmptyFinderQuery. Every code must be known to the catalog; region codes
// match case-insensitively.
func (c *Catalog) FindRegions(q FinderQuery) ([]region.Region, error) {
	switch {
	case len(q.CountryCodes) > 0 && len(q.RegionCodes) > 0:
		return nil, ErrAmbiguousFinderQuery
	case len(q.CountryCodes) == 0 && len(q.RegionCodes) == 0:
		return nil, ErrEmptyFinderQuery
	}

	if len(q.CountryCodes) > 0 {
		wanted := make(map[int]struct{}, len(q.CountryCodes))
		for _, code := range q.CountryCodes {
			if _, ok := c.countryCodes[code]; !ok {
				return nil, &UnknownCountryCodeError{Code: code}
			}
			wanted[code] = struct{}{}
		}
		var out []region.Region
		for _, r := range c.regions {
			if _, ok := wanted[r.CountryCode]; ok {
				out = append(out, r)
			}
		}
		return out, nil
	}

	wanted := make(map[string]struct{}, len(q.RegionCodes))
	for _, code := range q.RegionCodes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if _, ok := c.regionCodes[normalized]; !ok {
			return nil, &UnknownRegionCodeError{Code: code}
		}
		wanted[normalized] = struct{}{}
	}
	var out []region.Region
	for _, r := range c.regions {
		if _, ok := wanted[r.RegionCode]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// Package region defines the (country calling code, ISO region code) pair
// that identifies a phone-numbering territory.
package region

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Region identifies a phone-numbering territory by its country calling code
// and ISO 3166-1 alpha-2 region code. Several region codes can share one
// calling code; non-geographic entities use the region code "001". Identity
// is value equality on the pair, so Region is usable as a map key.
type Region struct {
	CountryCode int
	RegionCode  string
}

// New builds a Region, normalizing the region code to upper case.
func New(countryCode int, regionCode string) Region {
	return Region{
		CountryCode: countryCode,
		RegionCode:  strings.ToUpper(strings.TrimSpace(regionCode)),
	}
}

// String renders the region as "<calling code>:<region code>", e.g. "1:US".
func (r Region) String() string {
	return strconv.Itoa(r.CountryCode) + ":" + r.RegionCode
}

// ErrInvalidRegionString is the sentinel for malformed region strings.
var ErrInvalidRegionString = errors.New("phonegen: invalid region string")

// ParseError reports a region string that failed normalization.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("phonegen: invalid region string %q: %s", e.Input, e.Reason)
}

// Unwrap makes the error match ErrInvalidRegionString via errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidRegionString
}

// Parse normalizes a loose "<calling code>:<region code>" string such as
// "1:US" into a Region. This is the boundary normalization for callers that
// hold regions as plain strings; anything else is rejected with a ParseError.
func Parse(s string) (Region, error) {
	head, tail, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Region{}, &ParseError{Input: s, Reason: "want <calling code>:<region code>"}
	}
	countryCode, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || countryCode <= 0 {
		return Region{}, &ParseError{Input: s, Reason: "calling code must be a positive integer"}
	}
	regionCode := strings.ToUpper(strings.TrimSpace(tail))
	if regionCode == "" {
		return Region{}, &ParseError{Input: s, Reason: "empty region code"}
	}
	return New(countryCode, regionCode), nil
}

// ParseAll parses every region string, failing on the first invalid one.
func ParseAll(specs []string) ([]Region, error) {
	regions := make([]Region, 0, len(specs))
	for _, spec := range specs {
		r, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// Package phonegen generates syntactically valid phone-number digit strings
// as test inputs for property-based tests.
//
// Numbers are parameterized by region (country calling code + ISO region
// code) and by named number-format category (mobile, toll_free, ...). The
// catalog of regions and patterns comes from the libphonenumber dataset and
// is built once per process; randomness, replay, and shrinking belong to the
// host engine (rapid or gopter).
//
//	gen := phonegen.MustPhoneNumber(
//		strategy.WithRegionStrings("1:US"),
//		strategy.WithFormatLabels("toll_free"),
//	)
//	rapid.Check(t, func(t *rapid.T) {
//		number := gen.Draw(t, "number")
//		// number is a digit string matching the US toll-free pattern
//	})
package phonegen

import (
	"sync"

	"github.com/leanovate/gopter"
	"pgregory.net/rapid"

	"github.com/auth-platform/phonegen/catalog"
	"github.com/auth-platform/phonegen/metadata"
	"github.com/auth-platform/phonegen/strategy"
)

// buildDefault builds the shared catalog over the embedded libphonenumber
// dataset exactly once per process.
var buildDefault = sync.OnceValues(func() (*catalog.Catalog, error) {
	provider, err := metadata.NewLibPhoneNumberProvider()
	if err != nil {
		return nil, err
	}
	return catalog.Build(provider), nil
})

// Catalog returns the process-wide catalog over the libphonenumber dataset.
// It is built on first use and read-only afterwards, safe for concurrent
// readers. Callers with custom metadata build their own via catalog.Build.
func Catalog() (*catalog.Catalog, error) {
	return buildDefault()
}

// PhoneNumber returns a rapid generator of phone-number digit strings over
// the default catalog. Invalid regions or format names fail here, before any
// test execution begins.
func PhoneNumber(opts ...strategy.Option) (*rapid.Generator[string], error) {
	s, err := newStrategy(opts)
	if err != nil {
		return nil, err
	}
	return strategy.Generator(s), nil
}

// MustPhoneNumber is PhoneNumber, panicking on a construction error.
func MustPhoneNumber(opts ...strategy.Option) *rapid.Generator[string] {
	g, err := PhoneNumber(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// PhoneNumberGen returns a gopter generator of phone-number digit strings
// over the default catalog.
func PhoneNumberGen(opts ...strategy.Option) (gopter.Gen, error) {
	s, err := newStrategy(opts)
	if err != nil {
		return nil, err
	}
	return strategy.Gen(s), nil
}

// MustPhoneNumberGen is PhoneNumberGen, panicking on a construction error.
func MustPhoneNumberGen(opts ...strategy.Option) gopter.Gen {
	g, err := PhoneNumberGen(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func newStrategy(opts []strategy.Option) (*strategy.Strategy, error) {
	cat, err := Catalog()
	if err != nil {
		return nil, err
	}
	return strategy.New(cat, opts...)
}

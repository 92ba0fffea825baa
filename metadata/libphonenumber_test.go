package metadata_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/metadata"
	"github.com/auth-platform/phonegen/region"
)

func TestLibPhoneNumberProviderKnowsMajorRegions(t *testing.T) {
	p, err := metadata.NewLibPhoneNumberProvider()
	require.NoError(t, err)
	require.NotEmpty(t, p.Regions())

	us, ok := p.MetadataFor(region.New(1, "US"))
	require.True(t, ok, "US must be present")
	assert.Equal(t, "US", us.ID)
	assert.Equal(t, 1, us.CountryCode)
	assert.Equal(t, "1", us.NationalPrefix)
	for _, name := range []format.Name{format.GeneralDesc, format.FixedLine, format.Mobile, format.TollFree} {
		_, has := us.Pattern(name)
		assert.True(t, has, "US should advertise %s", name)
	}

	gb, ok := p.MetadataFor(region.New(44, "GB"))
	require.True(t, ok, "GB must be present")
	assert.Equal(t, "0", gb.NationalPrefix)
}

func TestLibPhoneNumberProviderIncludesNonGeographicEntities(t *testing.T) {
	p, err := metadata.NewLibPhoneNumberProvider()
	require.NoError(t, err)

	// 800 is the shared international toll-free entity.
	rec, ok := p.MetadataFor(region.New(800, "001"))
	require.True(t, ok, "800:001 must be present")
	_, has := rec.Pattern(format.TollFree)
	assert.True(t, has, "800:001 should advertise toll_free")
}

func TestLibPhoneNumberProviderPatternsCompile(t *testing.T) {
	p, err := metadata.NewLibPhoneNumberProvider()
	require.NoError(t, err)

	for _, r := range p.Regions() {
		rec, ok := p.MetadataFor(r)
		require.True(t, ok)
		for name, pattern := range rec.Patterns {
			require.NotEmpty(t, pattern, "%s %s", r, name)
			_, compileErr := regexp.Compile(pattern)
			assert.NoError(t, compileErr, "pattern for %s %s must compile", r, name)
		}
	}
}

func TestLibPhoneNumberProviderStableOrder(t *testing.T) {
	p, err := metadata.NewLibPhoneNumberProvider()
	require.NoError(t, err)
	assert.Equal(t, p.Regions(), p.Regions())
}

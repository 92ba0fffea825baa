package strategy_test

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/strategy"
)

func TestGenProducesDigitStrings(t *testing.T) {
	s, err := strategy.New(newTestCatalog())
	require.NoError(t, err)

	digits := regexp.MustCompile(`\A[0-9]+\z`)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("every generated number is a non-empty digit string",
		prop.ForAll(func(number string) bool {
			return digits.MatchString(number)
		}, strategy.Gen(s)))
	properties.TestingRun(t)
}

func TestGenHonorsRegionAndFormatConstraints(t *testing.T) {
	s, err := strategy.New(newTestCatalog(),
		strategy.WithRegions(fixtureUS),
		strategy.WithFormats(format.TollFree))
	require.NoError(t, err)

	tollFree := regexp.MustCompile(`\A(?:` + usTollFreePattern + `)\z`)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("every generated number is US toll-free",
		prop.ForAll(func(number string) bool {
			return tollFree.MatchString(number)
		}, strategy.Gen(s)))
	properties.TestingRun(t)
}

func TestGenIsDeterministicForASeed(t *testing.T) {
	s, err := strategy.New(newTestCatalog())
	require.NoError(t, err)

	g := strategy.Gen(s)

	sample := func() []string {
		params := gopter.DefaultGenParameters()
		params.Rng.Seed(42)
		values := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			result := g(params)
			value, ok := result.Retrieve()
			require.True(t, ok, "generator returned an empty result")
			values = append(values, value.(string))
		}
		return values
	}

	require.Equal(t, sample(), sample(), "same seed must replay the same draws")
}

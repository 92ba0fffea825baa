package strategy

import (
	"math/rand"
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Gen adapts a Strategy to a gopter generator. Region and format selection
// draw from the generator parameters' Rng; string generation delegates to
// gen.RegexMatch so gopter's regex shrinker applies. An empty search space
// yields an empty result, which gopter reports as a generator failure.
func Gen(s *Strategy) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		entry, err := s.Select(rngChooser{rng: params.Rng})
		if err != nil {
			return gopter.NewEmptyResult(reflect.TypeOf(""))
		}
		return gen.RegexMatch(entry.Pattern).SuchThat(onlyDigits)(params)
	}
}

type rngChooser struct {
	rng *rand.Rand
}

func (c rngChooser) Choose(n int, _ string) int {
	return c.rng.Intn(n)
}

package strategy

import (
	"pgregory.net/rapid"
)

// Generator adapts a Strategy to a rapid generator. Randomness, replay, and
// shrinking belong to rapid; shrinking walks rapid's own ordering over the
// regex-driven string space. A draw failure aborts the property via
// t.Fatalf, so a test never observes malformed output.
func Generator(s *Strategy) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		value, err := s.Draw(rapidSampler{t: t})
		if err != nil {
			t.Fatalf("phonegen: %v", err)
		}
		return value
	})
}

type rapidSampler struct {
	t *rapid.T
}

func (s rapidSampler) Choose(n int, label string) int {
	return rapid.IntRange(0, n-1).Draw(s.t, label)
}

func (s rapidSampler) DigitStringMatching(pattern, label string) string {
	return rapid.StringMatching(pattern).Filter(onlyDigits).Draw(s.t, label)
}

// onlyDigits enforces the 0-9 output alphabet even for patterns that admit a
// wider character class.
func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIteratorCollectPreservesOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Collect returns all elements in order", prop.ForAll(
		func(items []int) bool {
			collected := Collect(FromSlice(items))
			if len(collected) != len(items) {
				return false
			}
			for i, item := range items {
				if collected[i] != item {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("iterators are restartable", prop.ForAll(
		func(items []int) bool {
			it := FromSlice(items)
			first := Collect(it)
			second := Collect(it)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Filter keeps exactly the matching elements", prop.ForAll(
		func(items []int) bool {
			even := func(n int) bool { return n%2 == 0 }
			filtered := Collect(Filter(FromSlice(items), even))
			count := 0
			for _, item := range items {
				if even(item) {
					if filtered[count] != item {
						return false
					}
					count++
				}
			}
			return count == len(filtered)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestIteratorBasicOperations(t *testing.T) {
	t.Run("Map transforms elements", func(t *testing.T) {
		doubled := Collect(Map(FromSlice([]int{1, 2, 3}), func(n int) int { return n * 2 }))
		if len(doubled) != 3 || doubled[0] != 2 || doubled[2] != 6 {
			t.Errorf("unexpected result %v", doubled)
		}
	})

	t.Run("Take stops the source early", func(t *testing.T) {
		visited := 0
		source := Iterator[int](func(yield func(int) bool) {
			for i := 0; i < 100; i++ {
				visited++
				if !yield(i) {
					return
				}
			}
		})
		taken := Collect(Take(source, 3))
		if len(taken) != 3 {
			t.Errorf("expected 3 elements, got %d", len(taken))
		}
		if visited != 3 {
			t.Errorf("expected lazy evaluation to visit 3 elements, visited %d", visited)
		}
	})

	t.Run("Count consumes the iterator", func(t *testing.T) {
		if got := Count(FromSlice([]string{"a", "b", "c"})); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("Collect of empty iterator is nil", func(t *testing.T) {
		if got := Collect(FromSlice[int](nil)); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var seen []int
		FromSlice([]int{1, 2, 3})(func(n int) bool {
			seen = append(seen, n)
			return n < 2
		})
		if len(seen) != 2 {
			t.Errorf("expected iteration to stop after 2 elements, saw %v", seen)
		}
	})
}

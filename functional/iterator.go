// Package functional provides a minimal lazy iteration primitive built on
// Go 1.23+ range functions.
package functional

// Iterator is a lazy, restartable sequence. Ranging over it replays the
// sequence from its source, so an iterator can be consumed more than once.
type Iterator[T any] func(yield func(T) bool)

// FromSlice creates an iterator over a slice.
func FromSlice[T any](items []T) Iterator[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Filter keeps elements matching the predicate.
func Filter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return func(yield func(T) bool) {
		it(func(item T) bool {
			if pred(item) {
				return yield(item)
			}
			return true
		})
	}
}

// Map transforms each element.
func Map[T, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return func(yield func(U) bool) {
		it(func(item T) bool {
			return yield(fn(item))
		})
	}
}

// Take limits the iterator to its first n elements. The source is stopped
// right after the nth element, so nothing beyond it is pulled.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		it(func(item T) bool {
			count++
			if !yield(item) {
				return false
			}
			return count < n
		})
	}
}

// Collect materializes the iterator into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	it(func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Count consumes the iterator and returns the number of elements.
func Count[T any](it Iterator[T]) int {
	n := 0
	it(func(T) bool {
		n++
		return true
	})
	return n
}

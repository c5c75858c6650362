package revslice

import (
	"golang.org/x/exp/constraints"
)

// Equal reports whether two views have the same logical element sequence.
// Elements are compared in logical order; no copies are made. Two views over
// distinct storage compare equal if their logical sequences match.
func Equal[T comparable](a, b RevSlice[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T1, T2 any](a RevSlice[T1], b RevSlice[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders two views lexicographically over their logical element
// sequences. The result is -1, 0, or +1, with a shorter prefix ordering
// before a longer sequence it prefixes.
func Compare[T constraints.Ordered](a, b RevSlice[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T1, T2 any](a RevSlice[T1], b RevSlice[T2], cmp func(T1, T2) int) int {
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		if c := cmp(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return +1
	}
	return 0
}

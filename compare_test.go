package revslice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []int
		expected bool
	}{
		{
			name:     "both nil",
			expected: true,
		},
		{
			name:     "nil vs empty",
			b:        []int{},
			expected: true,
		},
		{
			name:     "equal storage",
			a:        []int{1, 2, 3},
			b:        []int{1, 2, 3},
			expected: true,
		},
		{
			name:     "different element",
			a:        []int{1, 2, 3},
			b:        []int{1, 9, 3},
			expected: false,
		},
		{
			name:     "different length",
			a:        []int{1, 2, 3},
			b:        []int{1, 2},
			expected: false,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Equal(New(tc.a), New(tc.b)), tc.name)
	}
}

// Equality is over the logical order: views over different storage compare
// equal iff their reversed sequences match.
func TestEqualLogicalOrder(t *testing.T) {
	a := New([]int{1, 2, 3})
	b := New([]int{3, 2, 1})
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(a, New(b.Collect())))
}

func TestEqualFunc(t *testing.T) {
	a := New([]string{"a", "B"})
	b := New([]string{"A", "b"})
	assert.False(t, Equal(a, b))
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []int
		expected int
	}{
		{
			name:     "both empty",
			expected: 0,
		},
		{
			name:     "equal",
			a:        []int{1, 2},
			b:        []int{1, 2},
			expected: 0,
		},
		{
			// Logical heads are the physical tails: [_, 3] < [_, 4].
			name:     "logical head decides",
			a:        []int{9, 3},
			b:        []int{1, 4},
			expected: -1,
		},
		{
			name:     "prefix orders first",
			a:        []int{2, 1},
			b:        []int{3, 2, 1},
			expected: -1,
		},
		{
			name:     "greater",
			a:        []int{1, 5},
			b:        []int{9, 4},
			expected: +1,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Compare(New(tc.a), New(tc.b)), tc.name)
		assert.Equal(t, -tc.expected, Compare(New(tc.b), New(tc.a)), tc.name+" flipped")
	}
}

func TestCompareFunc(t *testing.T) {
	a := New([]string{"x", "JJ"})
	b := New([]string{"yyy", "ii"})
	got := CompareFunc(a, b, func(x, y string) int {
		return len(x) - len(y)
	})
	// "JJ" vs "ii" ties on length; "x" vs "yyy" decides, and the first
	// non-zero comparison result is returned as-is.
	assert.Equal(t, -2, got)
}

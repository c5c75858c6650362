// Package revslice provides a zero-copy, reversed-order view over a slice.
//
// A RevSlice makes logical index 0 denote the last element of the forward
// slice, logical index 1 the second-to-last, and so on. All operations are
// index arithmetic plus delegation to native slice operations: no element is
// ever copied or moved, and sub-views produced by Slice and the split
// operations share storage with the forward slice and with each other.
package revslice

import (
	"fmt"

	"github.com/scottmcm/rev-slice/optionals"
)

// RevSlice is a reversed view of a forward slice. It does NOT own the
// underlying storage; it holds the forward slice header and nothing else.
//
// Copying a RevSlice or passing one by value is like copying a slice - both
// copies denote the same storage, and writes through one are visible through
// the other and through the forward slice. The caller MUST ensure that no
// write-capable view of a region is used while any other view of an
// overlapping region is being written through.
//
// The zero value is an empty view ready to use.
type RevSlice[T any] struct {
	fwd []T
}

// New wraps fwd in a reversed view. The view does NOT make a copy of fwd, so
// the caller MUST ensure the underlying memory remains valid for as long as
// the view (or any sub-view of it) is in use.
func New[T any](fwd []T) RevSlice[T] {
	return RevSlice[T]{fwd: fwd}
}

func (r RevSlice[T]) Len() int {
	return len(r.fwd)
}

func (r RevSlice[T]) IsEmpty() bool {
	return len(r.fwd) == 0
}

// Forward returns the forward slice this view wraps. It is the identity on
// the backing region, not a re-reversal.
func (r RevSlice[T]) Forward() []T {
	return r.fwd
}

// Maps the logical index i to its physical counterpart. Panics if i is out
// of range, like native slice indexing.
func (r RevSlice[T]) flipIndex(i int) int {
	if i < 0 || i >= len(r.fwd) {
		panic(fmt.Sprintf("revslice: index %d out of range for length %d", i, len(r.fwd)))
	}
	return len(r.fwd) - 1 - i
}

// Maps a logical range endpoint to its physical counterpart. Unlike
// flipIndex, a fencepost may equal the length.
func (r RevSlice[T]) flipFencepost(i int) int {
	return len(r.fwd) - i
}

func (r RevSlice[T]) checkRange(start, end int) {
	if start < 0 || start > end || end > len(r.fwd) {
		panic(fmt.Sprintf("revslice: range [%d:%d] out of range for length %d", start, end, len(r.fwd)))
	}
}

// At returns the element at logical index i, i.e. the element at physical
// index Len()-1-i of the forward slice. Panics if i is out of range.
func (r RevSlice[T]) At(i int) T {
	return r.fwd[r.flipIndex(i)]
}

// Ptr returns a pointer to the element at logical index i, for writing
// through the view. Panics if i is out of range.
func (r RevSlice[T]) Ptr(i int) *T {
	return &r.fwd[r.flipIndex(i)]
}

// Set writes v at logical index i. The write is immediately visible through
// the forward slice at physical index Len()-1-i. Panics if i is out of range.
func (r RevSlice[T]) Set(i int, v T) {
	r.fwd[r.flipIndex(i)] = v
}

// First returns the element at logical index 0, which is the last element of
// the forward slice. Returns None for an empty view.
func (r RevSlice[T]) First() optionals.Optional[T] {
	if len(r.fwd) == 0 {
		return optionals.None[T]()
	}
	return optionals.Some(r.fwd[len(r.fwd)-1])
}

// FirstPtr is First, but yields a pointer for writing through the view.
func (r RevSlice[T]) FirstPtr() optionals.Optional[*T] {
	if len(r.fwd) == 0 {
		return optionals.None[*T]()
	}
	return optionals.Some(&r.fwd[len(r.fwd)-1])
}

// Last returns the element at logical index Len()-1, which is the first
// element of the forward slice. Returns None for an empty view.
func (r RevSlice[T]) Last() optionals.Optional[T] {
	if len(r.fwd) == 0 {
		return optionals.None[T]()
	}
	return optionals.Some(r.fwd[0])
}

// LastPtr is Last, but yields a pointer for writing through the view.
func (r RevSlice[T]) LastPtr() optionals.Optional[*T] {
	if len(r.fwd) == 0 {
		return optionals.None[*T]()
	}
	return optionals.Some(&r.fwd[0])
}

// Slice returns the view of logical range [start:end). The result shares
// storage with r: it wraps the physical range [Len()-end : Len()-start) of
// the forward slice. Panics unless 0 <= start <= end <= Len().
func (r RevSlice[T]) Slice(start, end int) RevSlice[T] {
	r.checkRange(start, end)
	return RevSlice[T]{fwd: r.fwd[r.flipFencepost(end):r.flipFencepost(start)]}
}

// SplitAt splits the view at logical index mid, returning the views of
// logical ranges [0:mid) and [mid:Len()). mid may be 0 or Len(), producing an
// empty half. The halves wrap disjoint regions of the forward slice, so both
// may be written through independently. Panics if mid < 0 or mid > Len().
func (r RevSlice[T]) SplitAt(mid int) (RevSlice[T], RevSlice[T]) {
	if mid < 0 || mid > len(r.fwd) {
		panic(fmt.Sprintf("revslice: split index %d out of range for length %d", mid, len(r.fwd)))
	}
	p := r.flipFencepost(mid)
	return RevSlice[T]{fwd: r.fwd[p:]}, RevSlice[T]{fwd: r.fwd[:p]}
}

// SplitFirst returns the element at logical index 0 and the view of logical
// range [1:Len()). ok is false for an empty view.
func (r RevSlice[T]) SplitFirst() (first T, rest RevSlice[T], ok bool) {
	if len(r.fwd) == 0 {
		return first, rest, false
	}
	return r.fwd[len(r.fwd)-1], RevSlice[T]{fwd: r.fwd[:len(r.fwd)-1]}, true
}

// SplitFirstPtr is SplitFirst, but yields a pointer for writing. The pointer
// and the rest view denote disjoint regions.
func (r RevSlice[T]) SplitFirstPtr() (first *T, rest RevSlice[T], ok bool) {
	if len(r.fwd) == 0 {
		return nil, rest, false
	}
	return &r.fwd[len(r.fwd)-1], RevSlice[T]{fwd: r.fwd[:len(r.fwd)-1]}, true
}

// SplitLast returns the element at logical index Len()-1 and the view of
// logical range [0:Len()-1). ok is false for an empty view.
func (r RevSlice[T]) SplitLast() (last T, rest RevSlice[T], ok bool) {
	if len(r.fwd) == 0 {
		return last, rest, false
	}
	return r.fwd[0], RevSlice[T]{fwd: r.fwd[1:]}, true
}

// SplitLastPtr is SplitLast, but yields a pointer for writing. The pointer
// and the rest view denote disjoint regions.
func (r RevSlice[T]) SplitLastPtr() (last *T, rest RevSlice[T], ok bool) {
	if len(r.fwd) == 0 {
		return nil, rest, false
	}
	return &r.fwd[0], RevSlice[T]{fwd: r.fwd[1:]}, true
}

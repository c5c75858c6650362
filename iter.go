package revslice

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Iterator is a cursor over a RevSlice, yielding elements in logical order
// (physical reverse order). It reads the view lazily; it holds no copy of the
// elements. A fresh Iter call produces an independent cursor starting from
// logical index 0, so iteration is restartable.
type Iterator[T any] struct {
	rev RevSlice[T]

	// Logical index of the next element to yield.
	pos int
}

// Iter returns a new cursor positioned at logical index 0.
func (r RevSlice[T]) Iter() *Iterator[T] {
	return &Iterator[T]{rev: r}
}

// Next yields the next element in logical order. ok is false once the cursor
// has moved past the end.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if it.pos >= it.rev.Len() {
		return v, false
	}
	v = it.rev.At(it.pos)
	it.pos++
	return v, true
}

// NextPtr is Next, but yields a pointer for writing through the view. Each
// position is yielded at most once per pass, so no two pointers returned by
// the same pass alias the same element.
func (it *Iterator[T]) NextPtr() (*T, bool) {
	if it.pos >= it.rev.Len() {
		return nil, false
	}
	p := it.rev.Ptr(it.pos)
	it.pos++
	return p, true
}

// Remaining returns the number of elements not yet yielded.
func (it *Iterator[T]) Remaining() int {
	return it.rev.Len() - it.pos
}

// Seek moves the cursor to a logical position, interpreted per the standard
// io whence values. Seeking forward past the end clamps to the end; a seek
// that would land before position 0 is an error and leaves the cursor where
// it was.
func (it *Iterator[T]) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(it.pos)
	case io.SeekEnd:
		base = int64(it.rev.Len())
	default:
		return 0, errors.New("Iterator.Seek: invalid whence")
	}

	pos := base + offset
	if pos < 0 {
		return 0, errors.New("Iterator.Seek: negative position")
	}
	if pos > int64(it.rev.Len()) {
		pos = int64(it.rev.Len())
	}
	it.pos = int(pos)
	return pos, nil
}

// Collect returns the logical sequence as a new forward slice. This is the
// one operation in the package that copies elements. Returns nil for a view
// over a nil slice.
func (r RevSlice[T]) Collect() []T {
	// Avoid creating an empty list if the backing slice is nil.
	if r.fwd == nil {
		return nil
	}

	out := make([]T, 0, len(r.fwd))

	// Traverse the forward slice in reverse, adding to out.
	for i := len(r.fwd) - 1; i >= 0; i-- {
		out = append(out, r.fwd[i])
	}

	return out
}

// String renders the logical sequence, for debugging. Note that it copies
// the elements.
func (r RevSlice[T]) String() string {
	return fmt.Sprintf("%v", r.Collect())
}

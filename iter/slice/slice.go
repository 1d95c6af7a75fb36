// Package slice implements an iterator that traverses uni-directionally
// over a generic slice of elements.
//
// Slice supports the Size interface.
package slice

import "context"

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
	err error
}

// New returns an implementation of Iterator that traverses over the
// provided slice.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Size returns the length of the underlying slice, implementing the Size
// interface.  A progress bar wrapping the iterator uses it to infer the
// expected total.
func (i *Iterator[T]) Size() uint {
	return uint(len(i.s))
}

// Next advances the iterator to the next element of the underlying
// slice.  It returns false when the end of the slice has been reached or
// the context is cancelled.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	if i.pos >= len(i.s) {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	i.pos++
	return true
}

// Get returns the element of the underlying slice that the iterator
// refers to, or the zero value of T before the first call to Next.
func (i *Iterator[T]) Get() T {
	if i.pos == 0 {
		var ret T
		return ret
	}

	return i.s[i.pos-1]
}

// Error returns the context's error if the context is cancelled during a
// call to Next()
func (i *Iterator[T]) Error() error {
	return i.err
}

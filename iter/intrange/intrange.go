// Package intrange implements an iterator that counts over a range of
// integers, in the manner of Python's range builtin.
//
// Intrange supports the Size interface.
package intrange

import (
	"context"
	"errors"
)

// ErrZeroStep is returned by New when the step is zero, which describes
// a range that never advances.
var ErrZeroStep = errors.New("step must not be zero")

// Iterator counts from a start value towards a stop value in fixed
// increments.  The stop value itself is never produced; a negative step
// counts downwards.
type Iterator struct {
	start int
	stop  int
	step  int

	next      int
	cur       int
	remaining uint
	err       error
}

// New returns an implementation of Iterator that counts from start
// towards stop in increments of step.  The range is empty when stop is
// not reachable from start in the direction of step.
func New(start, stop, step int) (Iterator, error) {
	if step == 0 {
		return Iterator{}, ErrZeroStep
	}

	it := Iterator{
		start: start,
		stop:  stop,
		step:  step,
		next:  start,
	}
	it.remaining = it.Size()

	return it, nil
}

// Size returns the number of values the range produces, implementing the
// Size interface.
func (i *Iterator) Size() uint {
	d := i.stop - i.start

	if i.step > 0 {
		if d <= 0 {
			return 0
		}
		return uint((d + i.step - 1) / i.step)
	}

	if d >= 0 {
		return 0
	}
	return uint((-d - i.step - 1) / -i.step)
}

// Next advances the iterator to the next value of the range.  It returns
// false when the range is exhausted or the context is cancelled.
func (i *Iterator) Next(ctx context.Context) bool {
	if i.remaining == 0 {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	i.cur = i.next
	i.remaining--

	// skip the advance past the final value; a stop near the integer
	// limits would wrap it
	if i.remaining > 0 {
		i.next += i.step
	}
	return true
}

// Get returns the value of the range that the iterator refers to, or
// zero before the first call to Next.
func (i *Iterator) Get() int {
	return i.cur
}

// Error returns the context's error if the context is cancelled during a
// call to Next()
func (i *Iterator) Error() error {
	return i.err
}

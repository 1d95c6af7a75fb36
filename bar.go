// Package progress decorates iterators with a terminal progress meter.
// Wrapping an iterator yields exactly the same elements in the same order,
// while a status line showing the position, percentage, elapsed time,
// estimated time remaining and processing rate is redrawn in place on an
// output stream.
//
// Redraws are throttled so that tight loops do not spend their time
// painting the terminal: the line is repainted only once at least MinSteps
// elements and at least MinInterval of wall-clock time have passed since
// the previous repaint.  The initial render and the final render at
// exhaustion always happen.
package progress

import (
	"context"
	"fmt"
	"iter"
	"os"
	"sync/atomic"
	"time"

	"github.com/jake-scott/go-progress/iter/channel"
	"github.com/jake-scott/go-progress/iter/intrange"
	"github.com/jake-scott/go-progress/iter/scanner"
	"github.com/jake-scott/go-progress/iter/slice"
)

var barCounter atomic.Uint32

// Bar decorates an Iterator with a progress display.  It is itself an
// Iterator yielding exactly the elements of the one it wraps, so it can
// be consumed the same way the undecorated iterator would be.
//
// A Bar is driven by the single goroutine consuming the iterator; it is
// not safe for concurrent use.
type Bar[T any] struct {
	i  Iterator[T]
	id uint32

	opts    barOptions
	meter   meter
	printer *statusPrinter
	rate    *rateEstimator
	tr      tracer

	count           uint
	startTime       time.Time
	lastRenderCount uint
	lastRenderTime  time.Time

	started  bool
	finished bool
	writeErr error
}

// New decorates an iterator with a progress meter and returns the
// decorated iterator.
//
// The expected number of elements is taken from the Total option if
// supplied, or else inferred from iterators that implement the Size
// interface.  Without either, the meter operates in unknown-total mode
// and displays the count, elapsed time and rate only.
//
// New returns an error wrapping ErrInvalidOption if an option carries a
// value that does not make sense.
func New[T any](i Iterator[T], opts ...Option) (*Bar[T], error) {
	b := &Bar[T]{
		i: i,
		opts: barOptions{
			minInterval: DefaultMinInterval,
			minSteps:    DefaultMinSteps,
			barWidth:    DefaultBarWidth,
			out:         os.Stderr,
			clock:       time.Now,
		},
		id: barCounter.Add(1),
	}
	b.opts.processOptions(opts...)

	if err := b.opts.validate(); err != nil {
		return nil, err
	}
	if b.opts.out == nil {
		b.opts.out = os.Stderr
	}
	if b.opts.clock == nil {
		b.opts.clock = time.Now
	}

	if !b.opts.hasTotal {
		if sh, ok := i.(Size[T]); ok {
			b.opts.total = sh.Size()
			b.opts.hasTotal = true
		}
	}

	b.meter = meter{
		description: b.opts.description,
		total:       b.opts.total,
		hasTotal:    b.opts.hasTotal,
		width:       b.opts.barWidth,
		style:       b.opts.style,
	}
	b.printer = newStatusPrinter(b.opts.out)
	b.rate = newRateEstimator(b.opts.smoothing)

	if b.opts.tracing {
		var t T
		b.tr = newTracer(b.id, "(%T) %s", b.opts.tracer, t, b.opts.description)
	} else {
		b.tr = nullTracer{}
	}

	return b, nil
}

// NewSliceBar instantiates a progress bar over the elements of a slice.
// The total is taken from the slice length unless overridden with the
// Total option.
func NewSliceBar[T any](s []T, opts ...Option) (*Bar[T], error) {
	it := slice.New(s)
	return New[T](&it, opts...)
}

// NewChannelBar instantiates a progress bar reading elements from a
// channel until it is closed.  The total is unknown unless provided with
// the Total option.
func NewChannelBar[T any](ch chan T, opts ...Option) (*Bar[T], error) {
	it := channel.New(ch)
	return New[T](&it, opts...)
}

// NewScannerBar instantiates a progress bar reading tokens from a
// scanner, for example a bufio.Scanner splitting an input stream into
// lines.  The total is unknown unless provided with the Total option.
func NewScannerBar(s scanner.Scanner, opts ...Option) (*Bar[string], error) {
	it := scanner.New(s)
	return New[string](&it, opts...)
}

// NewRangeBar instantiates a progress bar counting from start towards
// stop in increments of step, in the manner of Python's range builtin.
// A negative step counts downwards; stop itself is never produced.  The
// total is inferred from the range bounds.
//
// New returns an error wrapping intrange.ErrZeroStep if step is zero.
func NewRangeBar(start, stop, step int, opts ...Option) (*Bar[int], error) {
	it, err := intrange.New(start, stop, step)
	if err != nil {
		return nil, err
	}
	return New[int](&it, opts...)
}

// Next retrieves the next element from the underlying iterator, updating
// the progress display as a side effect.  When the underlying iterator is
// exhausted, the status line is rendered one final time and then finished
// with a newline or erased, according to the LeaveTrace option.
//
// Next returns false once the underlying iterator stops producing
// elements, whether through exhaustion or error.
func (b *Bar[T]) Next(ctx context.Context) bool {
	if b.finished {
		return false
	}

	if !b.i.Next(ctx) {
		if err := b.i.Error(); err != nil {
			// leave the last status line in place; the caller sees
			// the error through Error()
			b.finished = true
			b.tr.msg("stopped after %d items: %s", b.count, err)
			b.tr.end()
			return false
		}

		b.finish()
		return false
	}

	if !b.started {
		b.start()
	}

	b.count++
	if b.count-b.lastRenderCount >= b.opts.minSteps {
		if now := b.opts.clock(); now.Sub(b.lastRenderTime) >= b.opts.minInterval {
			b.render(now)
		}
	}

	return true
}

// Get returns the current element of the underlying iterator.
func (b *Bar[T]) Get() T {
	return b.i.Get()
}

// Error returns any error produced by the underlying iterator, or else an
// error describing the first failed write to the output stream.
func (b *Bar[T]) Error() error {
	if err := b.i.Error(); err != nil {
		return err
	}
	return b.writeErr
}

// Count returns the number of elements retrieved through the bar so far.
func (b *Bar[T]) Count() uint {
	return b.count
}

// Close finishes the progress display without draining the underlying
// iterator, for callers that abandon iteration early.  The status line is
// rendered one final time and then finished or erased according to the
// LeaveTrace option.  Close is a no-op if iteration already completed.
//
// The returned error reports any failure writing to the output stream.
func (b *Bar[T]) Close() error {
	if !b.finished {
		b.tr.msg("closed after %d items", b.count)
		b.finish()
	}
	return b.writeErr
}

// All returns the remaining elements as a sequence for use with a
// for/range statement.  Iteration stops when the underlying iterator is
// exhausted or fails, or when ctx is cancelled; as with Next, the caller
// should consult Error afterwards.  A loop body that breaks early leaves
// the display in place until Close is called.
func (b *Bar[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for b.Next(ctx) {
			if !yield(b.Get()) {
				return
			}
		}
	}
}

// Msg writes a line of text to the output stream without corrupting the
// progress display.  The status line is erased, the message written with
// a trailing newline, and the status line repainted below it.
func (b *Bar[T]) Msg(format string, v ...any) {
	if b.writeErr != nil {
		return
	}
	b.setWriteErr(b.printer.message(fmt.Sprintf(format, v...)))
	b.tr.msg("interleaved message")
}

// start begins timing and paints the zero state.  It runs on the first
// successful retrieval rather than at construction, so that a bar built
// ahead of a slow setup phase does not measure the setup.
func (b *Bar[T]) start() {
	b.started = true
	b.startTime = b.opts.clock()
	b.render(b.startTime)
}

// render repaints the status line for the current position and advances
// the throttle bookkeeping.  Failed writes put the bar into a quiet mode
// where elements still flow but no further painting is attempted.
func (b *Bar[T]) render(now time.Time) {
	b.lastRenderCount = b.count
	b.lastRenderTime = now

	if b.writeErr != nil {
		return
	}

	elapsed := now.Sub(b.startTime)
	rate := b.rate.observe(b.count, elapsed, now)
	line := b.meter.format(b.count, elapsed, rate)

	if err := b.printer.print(line); err != nil {
		b.setWriteErr(err)
		b.tr.msg("write failed at %d items: %s", b.count, err)
		return
	}
	b.tr.msg("rendered at %d items, elapsed %s", b.count, elapsed)
}

func (b *Bar[T]) finish() {
	b.finished = true

	now := b.opts.clock()
	if !b.started {
		// the source was empty; show the zero state before finishing
		b.startTime = now
	}
	b.render(now)

	if b.writeErr == nil {
		if b.opts.leaveTrace {
			b.setWriteErr(b.printer.newline())
		} else {
			b.setWriteErr(b.printer.erase())
		}
	}

	if b.opts.leaveTrace {
		b.tr.msg("finished after %d items, leaving status", b.count)
	} else {
		b.tr.msg("finished after %d items, erasing status", b.count)
	}
	b.tr.end()
}

func (b *Bar[T]) setWriteErr(err error) {
	if err != nil && b.writeErr == nil {
		b.writeErr = fmt.Errorf("writing status line: %w", err)
	}
}

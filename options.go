package progress

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultMinInterval is the minimum wall-clock time between two redraws of
// the status line, used when the MinInterval option is not supplied.
var DefaultMinInterval = 500 * time.Millisecond

// DefaultMinSteps is the minimum number of elements between two redraws of
// the status line, used when the MinSteps option is not supplied.
var DefaultMinSteps uint = 1

// DefaultBarWidth is the width in cells of the meter's bar segment, used
// when the BarWidth option is not supplied.
var DefaultBarWidth = 10

// ErrInvalidOption is wrapped by the errors returned from the constructors
// when an option carries a nonsensical value.
var ErrInvalidOption = errors.New("invalid progress option")

type barOptions struct {
	description string
	total       uint
	hasTotal    bool
	leaveTrace  bool
	minInterval time.Duration
	minSteps    uint
	barWidth    int
	smoothing   float64
	out         io.Writer
	style       Style
	clock       func() time.Time
	tracer      TraceFunc
	tracing     bool
}

// Option customizes the behaviour of a progress bar.
type Option func(o *barOptions)

// Description sets a short label that is displayed at the beginning of the
// status line.
//
// The default is no label.
func Description(desc string) Option {
	return func(o *barOptions) {
		o.description = desc
	}
}

// Total sets the expected number of elements, enabling the percentage bar
// and time-remaining estimate.
//
// If not supplied, the total is inferred from the wrapped iterator when it
// implements the Size interface; otherwise the bar operates in unknown-total
// mode and displays only the element count, elapsed time and rate.
func Total(total uint) Option {
	return func(o *barOptions) {
		o.total = total
		o.hasTotal = true
	}
}

// LeaveTrace controls what happens to the status line once iteration
// completes: true finishes the line with a newline so it stays on screen,
// false erases it.
//
// The default is to erase the line.
func LeaveTrace(leave bool) Option {
	return func(o *barOptions) {
		o.leaveTrace = leave
	}
}

// MinInterval sets the minimum wall-clock time between two redraws of the
// status line.  A redraw is skipped unless at least this much time has
// passed since the previous one.  The initial render and the final render
// at exhaustion are exempt.
//
// The default is DefaultMinInterval.
func MinInterval(d time.Duration) Option {
	return func(o *barOptions) {
		o.minInterval = d
	}
}

// MinSteps sets the minimum number of elements between two redraws of the
// status line.  A redraw is skipped unless at least this many elements have
// been retrieved since the previous one.  Zero disables the element
// threshold, leaving redraws throttled by time alone.
//
// The default is DefaultMinSteps.
func MinSteps(n uint) Option {
	return func(o *barOptions) {
		o.minSteps = n
	}
}

// BarWidth sets the width, in cells, of the meter's bar segment.
//
// The default is DefaultBarWidth.
func BarWidth(w int) Option {
	return func(o *barOptions) {
		o.barWidth = w
	}
}

// Smoothing enables exponential smoothing of the displayed rate (and so of
// the time-remaining estimate).  The age is the number of recent renders
// the moving average favours; it must be at least 1.  A zero age disables
// smoothing, in which case the rate is the plain average over the whole
// run.
//
// The default is no smoothing.
func Smoothing(age float64) Option {
	return func(o *barOptions) {
		o.smoothing = age
	}
}

// WithWriter sets the stream the status line is written to.  A nil writer
// selects the default.
//
// The default is os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *barOptions) {
		o.out = w
	}
}

// WithStyle sets the styles applied to the segments of the status line.
//
// The default renders every segment unstyled.
func WithStyle(s Style) Option {
	return func(o *barOptions) {
		o.style = s
	}
}

// WithClock sets the function used to read the current time.  It exists
// so that throttling behaviour can be exercised with a synthetic clock;
// a nil function selects the default.
//
// The default is time.Now, whose monotonic reading makes interval
// comparisons safe against wall-clock adjustment.
func WithClock(now func() time.Time) Option {
	return func(o *barOptions) {
		o.clock = now
	}
}

// WithTraceFunc sets the trace function for the bar.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) Option {
	return func(o *barOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing of render decisions.  If a custom trace
// function has not been set using WithTraceFunc, trace messages are
// printed to stderr.
func WithTracing(enable bool) Option {
	return func(o *barOptions) {
		o.tracing = enable
	}
}

func (o *barOptions) processOptions(opts ...Option) {
	for _, f := range opts {
		f(o)
	}
}

func (o *barOptions) validate() error {
	if o.minInterval < 0 {
		return fmt.Errorf("%w: minimum update interval must not be negative (%v)", ErrInvalidOption, o.minInterval)
	}
	if o.barWidth < 1 {
		return fmt.Errorf("%w: bar width must be at least 1 (%d)", ErrInvalidOption, o.barWidth)
	}
	if o.smoothing != 0 && o.smoothing < 1 {
		return fmt.Errorf("%w: smoothing age must be 0 (disabled) or at least 1 (%g)", ErrInvalidOption, o.smoothing)
	}
	return nil
}

package progress

import (
	"fmt"
	"os"
	"time"
)

// TraceFunc defines the function prototype of a tracing function
// Per bar functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all bars.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

type tracer interface {
	msg(format string, v ...any)
	end()
}

type barTracer struct {
	begin       time.Time
	description string
	id          uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc, v ...any) *barTracer {
	if f == nil {
		f = DefaultTracer
	}

	// description is only a format string when args are supplied; a plain
	// description may contain % characters
	if len(v) > 0 {
		description = fmt.Sprintf(description, v...)
	}

	t := &barTracer{
		begin:       time.Now(),
		description: description,
		id:          id,
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *barTracer) start() {
	t.traceFunc("%s: START [bar #%d] %s", t.begin.Format(time.RFC3339), t.id, t.description)
}

func (t *barTracer) msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id, t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [bar #%d] %s: "+format, args...)
}

func (t *barTracer) end() {
	t.traceFunc("%s: END [bar #%d] %s", time.Now().Format(time.RFC3339), t.id, t.description)
}

type nullTracer struct{}

func (t nullTracer) msg(string, ...any) {}
func (t nullTracer) end()               {}

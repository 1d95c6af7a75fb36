package progress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracer(t *testing.T) {
	assert := assert.New(t)

	var buf string
	testTracer := func(format string, v ...any) {
		buf = fmt.Sprintf("XXX "+format, v...)
	}
	DefaultTracer = func(format string, v ...any) {
		buf = fmt.Sprintf("YYY "+format, v...)
	}

	// test tracing using the default tracer function
	tr := newTracer(123, "testDefaultTracer", nil)

	assert.Contains(buf, "YYY")
	assert.Contains(buf, "START [bar #123] testDefaultTracer")

	tr.msg("rendered at %d items", 42)
	assert.Contains(buf, "MSG [bar #123] testDefaultTracer: rendered at 42 items")

	tr.end()
	assert.Contains(buf, "YYY")
	assert.Contains(buf, "END [bar #123] testDefaultTracer")

	// test tracing using a supplied tracing function
	tr = newTracer(456, "testMyTracer %s", testTracer, "with args")
	assert.Contains(buf, "XXX")
	assert.Contains(buf, "START [bar #456] testMyTracer with args")

	tr.end()
	assert.Contains(buf, "XXX")
	assert.Contains(buf, "END [bar #456] testMyTracer with args")

	// a description with no args is not a format string; % characters
	// pass through untouched
	tr = newTracer(789, "90% there", testTracer)
	assert.Contains(buf, "START [bar #789] 90% there")

	tr.msg("rendered at %d items", 7)
	assert.Contains(buf, "MSG [bar #789] 90% there: rendered at 7 items")
}

func TestNullTracer(t *testing.T) {
	assert := assert.New(t)

	tr := nullTracer{}
	assert.NotPanics(func() { tr.msg("nothing to see") })
	assert.NotPanics(func() { tr.end() })
}

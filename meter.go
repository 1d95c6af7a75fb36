package progress

import (
	"fmt"
	"strings"
	"time"
)

// meter formats the status line for a position in the sequence.  It holds
// everything about the line that does not change between renders: the
// label, the expected total, the bar width and the styling.
type meter struct {
	description string
	total       uint
	hasTotal    bool
	width       int
	style       Style
}

// format produces the status line for n retrieved elements after the
// given elapsed time.  The rate is in elements per second; it is ignored
// while elapsed is zero, when no rate can be shown yet.
//
// With a known total the line carries a bar, a count with percentage, and
// elapsed/remaining/rate figures:
//
//	|####------| 40/100  40% [elapsed: 00:03 left: 00:04, 13.33 iters/sec]
//
// Without one it reduces to the count and timing figures:
//
//	40 [elapsed: 00:03, 13.33 iters/sec]
func (m meter) format(n uint, elapsed time.Duration, rate float64) string {
	total, hasTotal := m.total, m.hasTotal
	if hasTotal && n > total {
		// more elements than promised; the total can't be trusted so
		// fall back to a plain count
		hasTotal = false
	}

	elapsedStr := formatInterval(elapsed)
	rateStr := "?"
	if elapsed > 0 {
		rateStr = fmt.Sprintf("%5.2f", rate)
	}

	var sb strings.Builder
	if m.description != "" {
		sb.WriteString(m.style.Description.Render(m.description))
		sb.WriteString(": ")
	}

	if hasTotal && total > 0 {
		frac := float64(n) / float64(total)

		filled := int(frac * float64(m.width))
		bar := strings.Repeat("#", filled) + strings.Repeat("-", m.width-filled)

		percentage := fmt.Sprintf("%3d%%", int(frac*100))

		leftStr := "?"
		if n > 0 && rate > 0 {
			left := time.Duration(float64(total-n) / rate * float64(time.Second))
			leftStr = formatInterval(left)
		}

		sb.WriteString(m.style.Bar.Render("|" + bar + "|"))
		sb.WriteString(" ")
		sb.WriteString(m.style.Counts.Render(fmt.Sprintf("%d/%d %s", n, total, percentage)))
		sb.WriteString(" ")
		sb.WriteString(m.style.Stats.Render(
			fmt.Sprintf("[elapsed: %s left: %s, %s iters/sec]", elapsedStr, leftStr, rateStr)))

		return sb.String()
	}

	sb.WriteString(m.style.Counts.Render(fmt.Sprintf("%d", n)))
	sb.WriteString(" ")
	sb.WriteString(m.style.Stats.Render(
		fmt.Sprintf("[elapsed: %s, %s iters/sec]", elapsedStr, rateStr)))

	return sb.String()
}

// formatInterval renders a duration as M:SS timestamps, growing to
// H:MM:SS once an hour has passed.  Sub-second precision is dropped.
func formatInterval(d time.Duration) string {
	secs := int(d.Seconds())
	mins, s := secs/60, secs%60
	h, m := mins/60, mins%60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

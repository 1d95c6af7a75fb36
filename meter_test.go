package progress

import (
	"strings"
	"testing"
	"time"

	tui "github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatInterval(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{time.Second, "00:01"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{83 * time.Second, "01:23"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{time.Hour + 83*time.Second, "1:01:23"},
		{25*time.Hour + 42*time.Minute + 7*time.Second, "25:42:07"},
	}

	for _, tt := range tests {
		assert.Equal(tt.want, formatInterval(tt.d))
	}
}

func TestMeterFormat(t *testing.T) {
	tests := []struct {
		name    string
		m       meter
		n       uint
		elapsed time.Duration
		rate    float64
		want    string
	}{
		{
			name: "zero state with total",
			m:    meter{total: 10, hasTotal: true, width: 10},
			want: "|----------| 0/10   0% [elapsed: 00:00 left: ?, ? iters/sec]",
		},
		{
			name: "zero state without total",
			m:    meter{width: 10},
			want: "0 [elapsed: 00:00, ? iters/sec]",
		},
		{
			name:    "partial progress",
			m:       meter{total: 10, hasTotal: true, width: 10},
			n:       4,
			elapsed: 2 * time.Second,
			rate:    2,
			want:    "|####------| 4/10  40% [elapsed: 00:02 left: 00:03,  2.00 iters/sec]",
		},
		{
			name:    "complete",
			m:       meter{total: 10, hasTotal: true, width: 10},
			n:       10,
			elapsed: 5 * time.Second,
			rate:    2,
			want:    "|##########| 10/10 100% [elapsed: 00:05 left: 00:00,  2.00 iters/sec]",
		},
		{
			name:    "no elements yet after some time",
			m:       meter{total: 10, hasTotal: true, width: 10},
			n:       0,
			elapsed: 3 * time.Second,
			want:    "|----------| 0/10   0% [elapsed: 00:03 left: ?,  0.00 iters/sec]",
		},
		{
			name:    "more elements than promised",
			m:       meter{total: 10, hasTotal: true, width: 10},
			n:       11,
			elapsed: 5 * time.Second,
			rate:    2.2,
			want:    "11 [elapsed: 00:05,  2.20 iters/sec]",
		},
		{
			name: "a total of zero counts as unknown",
			m:    meter{total: 0, hasTotal: true, width: 10},
			want: "0 [elapsed: 00:00, ? iters/sec]",
		},
		{
			name:    "unknown total with rate",
			m:       meter{width: 10},
			n:       42,
			elapsed: 10 * time.Second,
			rate:    4.2,
			want:    "42 [elapsed: 00:10,  4.20 iters/sec]",
		},
		{
			name:    "wide bar",
			m:       meter{total: 3, hasTotal: true, width: 20},
			n:       1,
			elapsed: time.Second,
			rate:    1,
			want:    "|######--------------| 1/3  33% [elapsed: 00:01 left: 00:02,  1.00 iters/sec]",
		},
		{
			name:    "long time remaining",
			m:       meter{total: 3700, hasTotal: true, width: 10},
			n:       1,
			elapsed: time.Second,
			rate:    1,
			want:    "|----------| 1/3700   0% [elapsed: 00:01 left: 1:01:39,  1.00 iters/sec]",
		},
		{
			name:    "description prefix",
			m:       meter{description: "scan", total: 4, hasTotal: true, width: 10},
			n:       2,
			elapsed: 2 * time.Second,
			rate:    1,
			want:    "scan: |#####-----| 2/4  50% [elapsed: 00:02 left: 00:02,  1.00 iters/sec]",
		},
		{
			name: "styles are applied per segment",
			m: meter{
				description: "scan",
				width:       10,
				style: Style{
					Description: tui.NewStyle().Transform(strings.ToUpper),
					Counts:      tui.NewStyle().Transform(func(s string) string { return "<" + s + ">" }),
				},
			},
			n:       3,
			elapsed: time.Second,
			rate:    3,
			want:    "SCAN: <3> [elapsed: 00:01,  3.00 iters/sec]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tt.want, tt.m.format(tt.n, tt.elapsed, tt.rate))
		})
	}
}

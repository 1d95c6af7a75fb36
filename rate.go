package progress

import (
	"time"

	"github.com/VividCortex/ewma"
)

// rateEstimator derives the displayed rate, in elements per second, from
// the sequence of renders.  With smoothing disabled the estimate is the
// plain average over the whole run.  With smoothing enabled it is an
// exponentially weighted moving average of the per-render rates, so the
// display follows recent throughput instead of being dominated by a fast
// or slow beginning; until the average has warmed up, the plain average
// is used.
type rateEstimator struct {
	avg       ewma.MovingAverage
	lastCount uint
	lastTime  time.Time
	seeded    bool
}

func newRateEstimator(age float64) *rateEstimator {
	e := &rateEstimator{}
	if age > 0 {
		e.avg = ewma.NewMovingAverage(age)
	}
	return e
}

// observe records a render at the given position and returns the rate to
// display.  A zero return means no rate is defined yet.
func (e *rateEstimator) observe(count uint, elapsed time.Duration, at time.Time) float64 {
	if e.avg != nil {
		if !e.seeded {
			e.lastCount, e.lastTime, e.seeded = count, at, true
		} else if dn, dt := count-e.lastCount, at.Sub(e.lastTime).Seconds(); dn > 0 && dt > 0 {
			e.avg.Add(float64(dn) / dt)
			e.lastCount, e.lastTime = count, at
		}

		if v := e.avg.Value(); v > 0 {
			return v
		}
	}

	if s := elapsed.Seconds(); s > 0 {
		return float64(count) / s
	}
	return 0
}

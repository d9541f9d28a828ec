package uncertain

import (
	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/airfoil/common"
	"log/slog"
	"time"
)

// drawMeter counts draws and rejections and logs progress
// no more often than interval, checked on each mark.
type drawMeter struct {
	interval time.Duration
	started  time.Time
	lastLog  time.Time
	reg      metrics.Registry
	draws    metrics.Meter
	rejects  metrics.Counter
}

func newDrawMeter(interval time.Duration) *drawMeter {
	// Won't work without this global setting.
	metrics.Enabled = true

	reg := metrics.NewRegistry()
	m := &drawMeter{
		interval: interval,
		started:  time.Now(),
		reg:      reg,
		draws:    metrics.NewMeter(),
		rejects:  metrics.NewCounter(),
	}
	m.lastLog = m.started
	if err := reg.Register("draws.meter", m.draws); err != nil {
		panic(err)
	}
	if err := reg.Register("rejects.count", m.rejects); err != nil {
		panic(err)
	}
	return m
}

func (m *drawMeter) mark(rejected bool) {
	m.draws.Mark(1)
	if rejected {
		m.rejects.Inc(1)
	}
	if m.interval > 0 && time.Since(m.lastLog) >= m.interval {
		m.lastLog = time.Now()
		m.log("Propagating")
	}
}

func (m *drawMeter) rejected() int64 {
	return m.rejects.Snapshot().Count()
}

func (m *drawMeter) log(msg string) {
	snap := m.draws.Snapshot()
	slog.Info(msg, "draws", humanize.Comma(snap.Count()),
		"rejected", humanize.Comma(m.rejected()),
		"dps", common.DecimalToFixed(snap.RateMean(), 0),
		"running", time.Since(m.started).Round(time.Millisecond))
}

func (m *drawMeter) stop() {
	if m == nil {
		return
	}
	m.draws.Stop()
}

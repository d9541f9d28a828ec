package uncertain

import (
	"context"
	"errors"
	"fmt"
	"github.com/montanaflynn/stats"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"log/slog"
	"time"
)

var ErrNoDraws = errors.New("number of draws must be positive")

// ErrOutOfRange means a Sampler returned a value outside the bounds it was given.
var ErrOutOfRange = errors.New("sample outside its range")

// Stats summarizes one derived quantity over all accepted draws.
type Stats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
	P05    float64
	P95    float64
}

// Summary is the outcome of a Propagate run.
// Rejected draws fell outside the physical domain and contribute to no Stats.
type Summary struct {
	N        int
	Rejected int
	Density  Stats
	Velocity Stats
	Lift     Stats
}

// ProgressInterval is how often Propagate logs progress.
var ProgressInterval = 5 * time.Second

// Propagate draws n (pressure, temperature) pairs from ranges, evaluates each with
// model at the given manometer height, and summarizes the results.
// Pressure draws are kPa-scaled and are converted to Pa before evaluation.
// The loop stops with ctx.Err() if ctx is done.
func Propagate(ctx context.Context, model aero.Model, height float64, ranges Ranges, s Sampler, n int) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("%w: %d", ErrNoDraws, n)
	}

	meter := newDrawMeter(ProgressInterval)
	defer meter.stop()

	densities := make([]float64, 0, n)
	velocities := make([]float64, 0, n)
	lifts := make([]float64, 0, n)
	rejected := 0

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			meter.log("Propagate interrupted")
			return Summary{}, ctx.Err()
		default:
		}

		pressure, temperature := ranges.Pressure.Sample(s), ranges.Temperature.Sample(s)
		if !ranges.Pressure.Contains(pressure) {
			return Summary{}, fmt.Errorf("%w: pressure %v not in %v", ErrOutOfRange, pressure, ranges.Pressure)
		}
		if !ranges.Temperature.Contains(temperature) {
			return Summary{}, fmt.Errorf("%w: temperature %v not in %v", ErrOutOfRange, temperature, ranges.Temperature)
		}
		scenario := aero.Scenario{
			Pressure:    pressure * common.PascalsPerKilopascal,
			Temperature: temperature,
			Height:      height,
		}
		r, err := model.Evaluate(scenario)
		if err != nil {
			if !errors.Is(err, aero.ErrDomain) {
				return Summary{}, err
			}
			slog.Debug("Rejected draw", "pressure", scenario.Pressure,
				"temperature", scenario.Temperature, "error", err)
			meter.mark(true)
			rejected++
			continue
		}
		meter.mark(false)
		densities = append(densities, r.Density)
		velocities = append(velocities, r.Velocity)
		lifts = append(lifts, r.Lift)
	}
	meter.log("Propagate done")

	return Summary{
		N:        n,
		Rejected: rejected,
		Density:  summarize(densities),
		Velocity: summarize(velocities),
		Lift:     summarize(lifts),
	}, nil
}

func summarize(data []float64) Stats {
	statsMustFloat := func(v float64, err error) float64 {
		if err != nil {
			return 0
		}
		return v
	}
	statsData := stats.Float64Data(data)
	return Stats{
		Mean:   statsMustFloat(statsData.Mean()),
		Median: statsMustFloat(statsData.Median()),
		Min:    statsMustFloat(statsData.Min()),
		Max:    statsMustFloat(statsData.Max()),
		StdDev: statsMustFloat(stats.StandardDeviation(statsData)),
		P05:    statsMustFloat(stats.Percentile(statsData, 5)),
		P95:    statsMustFloat(stats.Percentile(statsData, 95)),
	}
}

package uncertain

import (
	"context"
	"errors"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"log/slog"
	"math"
	"testing"
)

var testRanges = Ranges{
	Pressure:    Range{common.PressureUncertaintyMin, common.PressureUncertaintyMax},
	Temperature: Range{common.TemperatureUncertaintyMin, common.TemperatureUncertaintyMax},
}

func TestPropagate_Fixed(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	s := &Fixed{Values: []float64{98, 25}}
	sum, err := Propagate(context.Background(), aero.DefaultModel(), 0.020, testRanges, s, 10)
	if err != nil {
		t.Fatal(err)
	}
	ref, _ := aero.DefaultModel().Evaluate(aero.ReferenceScenario())
	if sum.N != 10 || sum.Rejected != 0 {
		t.Errorf("have n=%d rejected=%d want 10, 0", sum.N, sum.Rejected)
	}
	if math.Abs(sum.Density.Mean-ref.Density) > 1e-12 || sum.Density.StdDev > 1e-12 {
		t.Errorf("have density %+v want constant %f", sum.Density, ref.Density)
	}
	if sum.Lift.Min != ref.Lift || sum.Lift.Max != ref.Lift {
		t.Errorf("have lift %+v want constant %f", sum.Lift, ref.Lift)
	}
}

func TestPropagate_Uniform(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	sum, err := Propagate(context.Background(), aero.DefaultModel(), 0.020, testRanges, NewUniform(99), 20_000)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("%+v", sum)
	if sum.Rejected != 0 {
		t.Errorf("have %d rejected want 0", sum.Rejected)
	}

	// Extremes of the ideal gas law over the ranges.
	densityMin := 75_000 / (287.0 * (53 + 273))
	densityMax := 101_000 / (287.0 * (-56 + 273))
	if sum.Density.Min < densityMin || sum.Density.Max > densityMax {
		t.Errorf("have density [%f, %f] want within [%f, %f]",
			sum.Density.Min, sum.Density.Max, densityMin, densityMax)
	}
	if !(sum.Density.P05 < sum.Density.Median && sum.Density.Median < sum.Density.P95) {
		t.Errorf("have unordered percentiles %+v", sum.Density)
	}
	if sum.Velocity.StdDev <= 0 {
		t.Errorf("have velocity stddev %f want > 0", sum.Velocity.StdDev)
	}

	// Lift reduces to area * manometer pressure difference,
	// so it does not move with pressure or temperature.
	want := aero.DefaultModel().Area * aero.DefaultModel().PressureDifference(0.020)
	if math.Abs(sum.Lift.Mean-want) > 1e-9 || sum.Lift.StdDev > 1e-9 {
		t.Errorf("have lift %+v want constant %f", sum.Lift, want)
	}
}

func TestPropagate_Rejects(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	ranges := testRanges
	ranges.Temperature = Range{-400, -300}
	sum, err := Propagate(context.Background(), aero.DefaultModel(), 0.020, ranges, NewUniform(3), 100)
	if err != nil {
		t.Fatal(err)
	}
	if sum.N != 100 || sum.Rejected != 100 {
		t.Errorf("have n=%d rejected=%d want 100, 100", sum.N, sum.Rejected)
	}
	if sum.Lift != (Stats{}) {
		t.Errorf("have %+v want zero stats", sum.Lift)
	}
}

func TestPropagate_Errors(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	_, err := Propagate(context.Background(), aero.DefaultModel(), 0.020, testRanges, NewUniform(1), 0)
	if !errors.Is(err, ErrNoDraws) {
		t.Errorf("have %v want ErrNoDraws", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Propagate(ctx, aero.DefaultModel(), 0.020, testRanges, NewUniform(1), 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("have %v want context.Canceled", err)
	}
}

// offsetSampler ignores its bounds.
type offsetSampler struct{}

func (offsetSampler) Sample(min, max float64) float64 { return max + 1 }

func TestPropagate_SamplerOutOfRange(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	_, err := Propagate(context.Background(), aero.DefaultModel(), 0.020, testRanges, offsetSampler{}, 10)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("have %v want ErrOutOfRange", err)
	}
}

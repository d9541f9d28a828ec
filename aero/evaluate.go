package aero

import (
	"fmt"
	"github.com/rotblauer/airfoil/common"
)

// Scenario is one set of measured inputs.
type Scenario struct {
	Pressure    float64 // Pa
	Temperature float64 // C
	Height      float64 // m, manometer fluid
}

func ReferenceScenario() Scenario {
	return Scenario{
		Pressure:    common.PressureReference,
		Temperature: common.TemperatureReference,
		Height:      common.ManometerHeightReference,
	}
}

// Result holds the derived quantities for a Scenario.
type Result struct {
	Density  float64 // kg/m^3
	Velocity float64 // m/s
	Lift     float64 // N
}

// Evaluate runs density, then velocity, then lift.
// The first domain error stops the chain.
func (m Model) Evaluate(s Scenario) (Result, error) {
	var r Result
	var err error
	r.Density, err = m.Density(s.Pressure, s.Temperature)
	if err != nil {
		return Result{}, fmt.Errorf("density: %w", err)
	}
	r.Velocity, err = m.Velocity(r.Density, s.Height)
	if err != nil {
		return Result{}, fmt.Errorf("velocity: %w", err)
	}
	r.Lift, err = m.Lift(r.Velocity, r.Density)
	if err != nil {
		return Result{}, fmt.Errorf("lift: %w", err)
	}
	return r, nil
}

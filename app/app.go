package app

import (
	"fmt"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/report"
	"github.com/rotblauer/airfoil/uncertain"
	"io"
	"log/slog"
)

// Run evaluates the scenario, prints its lift, then prints one independent
// draw from each uncertainty range. The draws are illustrative and are not
// fed back into the lift.
func Run(w io.Writer, model aero.Model, scenario aero.Scenario, ranges uncertain.Ranges, sampler uncertain.Sampler) error {
	result, err := model.Evaluate(scenario)
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}
	slog.Debug("Evaluated scenario", "scenario", scenario,
		"density", result.Density, "velocity", result.Velocity, "lift", result.Lift)

	if _, err := fmt.Fprintln(w, report.LiftLine(result.Lift)); err != nil {
		return err
	}

	pressure := ranges.Pressure.Sample(sampler)
	if _, err := fmt.Fprintln(w, report.PressureLine(pressure)); err != nil {
		return err
	}

	temperature := ranges.Temperature.Sample(sampler)
	if _, err := fmt.Fprintln(w, report.TemperatureLine(temperature)); err != nil {
		return err
	}
	return nil
}

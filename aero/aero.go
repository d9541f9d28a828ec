package aero

import (
	"github.com/rotblauer/airfoil/common"
	"math"
)

// Model holds the fixed physical constants the formulas use.
// The zero value is not usable; start from DefaultModel.
type Model struct {
	// GasConstant is the specific gas constant of the air, (N m)/(kg K).
	GasConstant float64

	// SpecificGravity of the manometer fluid, dimensionless.
	SpecificGravity float64

	// WaterSpecificWeight in N/m^3.
	WaterSpecificWeight float64

	// Area is the airfoil planform area in m^2.
	Area float64
}

func DefaultModel() Model {
	return Model{
		GasConstant:         common.GasConstantAir,
		SpecificGravity:     common.SpecificGravityManometerFluid,
		WaterSpecificWeight: common.SpecificWeightWater,
		Area:                common.AreaAirfoilReference,
	}
}

// Validate reports the first model constant that is not finite and positive.
func (m Model) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"gas-constant", m.GasConstant},
		{"specific-gravity", m.SpecificGravity},
		{"water-specific-weight", m.WaterSpecificWeight},
		{"area", m.Area},
	} {
		if !common.IsFinite(c.value) || c.value <= 0 {
			return domainError("model."+c.name, c.value, "must be finite and positive")
		}
	}
	return nil
}

// Density returns air density in kg/m^3 from absolute pressure (Pa)
// and temperature (C) by the ideal gas law.
func (m Model) Density(pressure, temperature float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !common.IsFinite(pressure) {
		return 0, domainError("pressure", pressure, "not finite")
	}
	if !common.IsFinite(temperature) {
		return 0, domainError("temperature", temperature, "not finite")
	}
	if pressure <= 0 {
		return 0, domainError("pressure", pressure, "must be positive")
	}
	kelvin := common.CelsiusToKelvin(temperature)
	if kelvin <= 0 {
		return 0, domainError("temperature", temperature, "at or below absolute zero")
	}
	density := pressure / (m.GasConstant * kelvin)
	if !common.IsFinite(density) || density <= 0 {
		return 0, domainError("density", density, "not finite and positive")
	}
	return density, nil
}

// PressureDifference is the manometer reading converted to N/m^2.
func (m Model) PressureDifference(height float64) float64 {
	return m.SpecificGravity * m.WaterSpecificWeight * height
}

// Velocity returns air velocity in m/s from air density and the manometer
// fluid height (m).
func (m Model) Velocity(density, height float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !common.IsFinite(density) {
		return 0, domainError("density", density, "not finite")
	}
	if !common.IsFinite(height) {
		return 0, domainError("height", height, "not finite")
	}
	if density <= 0 {
		return 0, domainError("density", density, "must be positive")
	}
	if height < 0 {
		return 0, domainError("height", height, "must not be negative")
	}
	radicand := 2 * m.PressureDifference(height) / density
	if radicand < 0 {
		return 0, domainError("velocity", radicand, "negative radicand")
	}
	velocity := math.Sqrt(radicand)
	if !common.IsFinite(velocity) {
		return 0, domainError("velocity", velocity, "not finite")
	}
	return velocity, nil
}

// Lift returns the lift force in newtons on the airfoil.
// Velocity may take any sign; only its square matters.
func (m Model) Lift(velocity, density float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !common.IsFinite(velocity) {
		return 0, domainError("velocity", velocity, "not finite")
	}
	if !common.IsFinite(density) {
		return 0, domainError("density", density, "not finite")
	}
	if density < 0 {
		return 0, domainError("density", density, "must not be negative")
	}
	force := 0.5 * density * m.Area * velocity * velocity
	if !common.IsFinite(force) {
		return 0, domainError("lift", force, "not finite")
	}
	return force, nil
}

// Density, Velocity, and Lift below use DefaultModel.

func Density(pressure, temperature float64) (float64, error) {
	return DefaultModel().Density(pressure, temperature)
}

func Velocity(density, height float64) (float64, error) {
	return DefaultModel().Velocity(density, height)
}

func Lift(velocity, density float64) (float64, error) {
	return DefaultModel().Lift(velocity, density)
}

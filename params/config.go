package params

import (
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/uncertain"
)

// Config is everything a run needs besides its sampler.
type Config struct {
	Model    aero.Model
	Scenario aero.Scenario
	UncertaintyConfig
	OutputConfig
}

type UncertaintyConfig struct {
	// Ranges are the uniform bounds for the uncertainty draws.
	// Pressure is kPa-scaled.
	Ranges uncertain.Ranges

	// Seed for the uniform sampler. Zero seeds from the clock.
	Seed uint64

	// Samples is the number of draws for Monte Carlo propagation.
	Samples int
}

type OutputConfig struct {
	// Format is "text" or "json".
	Format string

	// Places is the number of fractional digits kept in JSON output.
	Places int32
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

func DefaultUncertaintyConfig() UncertaintyConfig {
	return UncertaintyConfig{
		Ranges: uncertain.Ranges{
			Pressure:    uncertain.Range{Min: common.PressureUncertaintyMin, Max: common.PressureUncertaintyMax},
			Temperature: uncertain.Range{Min: common.TemperatureUncertaintyMin, Max: common.TemperatureUncertaintyMax},
		},
		Seed:    0,
		Samples: 10_000,
	}
}

func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format: FormatText,
		Places: 6,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Model:             aero.DefaultModel(),
		Scenario:          aero.ReferenceScenario(),
		UncertaintyConfig: DefaultUncertaintyConfig(),
		OutputConfig:      DefaultOutputConfig(),
	}
}

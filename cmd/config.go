/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/params"
	"github.com/rotblauer/airfoil/uncertain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"log/slog"
)

// scenarioFlags is shared by the commands that evaluate a scenario.
// For batch they are the defaults for attributes a line leaves out.
var scenarioFlags = func() *pflag.FlagSet {
	defaults := params.DefaultConfig()
	fs := pflag.NewFlagSet("scenario", pflag.ContinueOnError)
	fs.Float64("pressure", defaults.Scenario.Pressure, "Absolute pressure (Pa)")
	fs.Float64("temperature", defaults.Scenario.Temperature, "Temperature (C)")
	fs.Float64("height", defaults.Scenario.Height, "Manometer fluid height (m)")
	cobra.CheckErr(viper.BindPFlags(fs))
	return fs
}()

// outputFlags is shared by the commands that can write JSON.
var outputFlags = func() *pflag.FlagSet {
	defaults := params.DefaultOutputConfig()
	fs := pflag.NewFlagSet("output", pflag.ContinueOnError)
	fs.String("format", defaults.Format, `Output format: "text" or "json"`)
	fs.Int32("places", defaults.Places, "Fractional digits kept in JSON output")
	cobra.CheckErr(viper.BindPFlags(fs))
	return fs
}()

// loadConfig layers viper's view (flags, env, config file) over params defaults.
func loadConfig() (*params.Config, error) {
	cfg := params.DefaultConfig()

	cfg.Model = aero.Model{
		GasConstant:         viper.GetFloat64("model.gas-constant"),
		SpecificGravity:     viper.GetFloat64("model.specific-gravity"),
		WaterSpecificWeight: viper.GetFloat64("model.water-specific-weight"),
		Area:                viper.GetFloat64("model.area"),
	}
	if err := cfg.Model.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.Scenario = aero.Scenario{
		Pressure:    viper.GetFloat64("pressure"),
		Temperature: viper.GetFloat64("temperature"),
		Height:      viper.GetFloat64("height"),
	}

	cfg.Ranges = uncertain.Ranges{
		Pressure:    uncertain.Range{Min: viper.GetFloat64("pressure-min"), Max: viper.GetFloat64("pressure-max")},
		Temperature: uncertain.Range{Min: viper.GetFloat64("temperature-min"), Max: viper.GetFloat64("temperature-max")},
	}
	cfg.Seed = viper.GetUint64("seed")
	cfg.Samples = viper.GetInt("samples")

	cfg.Format = viper.GetString("format")
	switch cfg.Format {
	case params.FormatText, params.FormatJSON:
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
	cfg.Places = viper.GetInt32("places")

	slog.Debug("Loaded config", "model", cfg.Model, "scenario", cfg.Scenario,
		"ranges", cfg.Ranges, "seed", cfg.Seed, "format", cfg.Format)
	return cfg, nil
}

// setDefaultSlog installs the process logger on the command's stderr.
func setDefaultSlog(cmd *cobra.Command, args []string) {
	level, err := common.ParseSlogLevel(viper.GetString("verbosity"))
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if viper.GetBool("log-json") {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler).With("cmd", cmd.Name()))
	if err != nil {
		slog.Warn("Bad verbosity, using default", "error", err, "level", level)
	}
	slog.Debug("Running", "args", args, "config", viper.ConfigFileUsed())
}

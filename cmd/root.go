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
	"errors"
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/airfoil/app"
	"github.com/rotblauer/airfoil/params"
	"github.com/rotblauer/airfoil/uncertain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"strings"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "airfoil",
	Short: "Compute airfoil lift from pressure and temperature",
	Long: `Airfoil computes the lift force on a simple airfoil model.

Air density comes from the ideal gas law (pressure, temperature),
air velocity from a manometer fluid height and that density,
and lift from the velocity, density, and the airfoil area.

With no subcommand it evaluates the reference scenario
(98000 Pa, 25 C, 0.020 m) and prints the lift, followed by one
uniform draw each from the pressure [75, 101] and temperature [-56, 53]
uncertainty ranges:

  Lift Force is (F)		= 1.7E+01 N
  UnCertainity Pressure = 92.417023
  Uncertainity Tempreture = -3.071262

Configuration is read from flags, then AIRFOIL_* environment variables,
then $HOME/.airfoil.yaml (or --config), then the built-in defaults.
Model constants can be overridden only from the config file or environment:

  model.gas-constant, model.specific-gravity,
  model.water-specific-weight, model.area
`,
	SilenceUsage:  true,
	SilenceErrors: true, // Execute logs them
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Run(cmd.OutOrStdout(), cfg.Model, cfg.Scenario, cfg.Ranges, uncertain.NewUniform(cfg.Seed))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("Failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := params.DefaultConfig()

	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.airfoil.yaml)")
	pFlags.String("verbosity", "warn", "Log level: debug, info, warn, error")
	pFlags.Bool("log-json", false, "Log as JSON to stderr")
	pFlags.Uint64("seed", defaults.Seed, "Uniform sampler seed (0 seeds from the clock)")
	pFlags.Float64("pressure-min", defaults.Ranges.Pressure.Min, "Pressure uncertainty lower bound (kPa)")
	pFlags.Float64("pressure-max", defaults.Ranges.Pressure.Max, "Pressure uncertainty upper bound (kPa)")
	pFlags.Float64("temperature-min", defaults.Ranges.Temperature.Min, "Temperature uncertainty lower bound (C)")
	pFlags.Float64("temperature-max", defaults.Ranges.Temperature.Max, "Temperature uncertainty upper bound (C)")
	cobra.CheckErr(viper.BindPFlags(pFlags))

	rootCmd.Flags().AddFlagSet(scenarioFlags)

	viper.SetDefault("model.gas-constant", defaults.Model.GasConstant)
	viper.SetDefault("model.specific-gravity", defaults.Model.SpecificGravity)
	viper.SetDefault("model.water-specific-weight", defaults.Model.WaterSpecificWeight)
	viper.SetDefault("model.area", defaults.Model.Area)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".airfoil" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".airfoil")
	}

	viper.SetEnvPrefix("airfoil")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("read config: %w", err))
		}
	}
}

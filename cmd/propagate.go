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
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/params"
	"github.com/rotblauer/airfoil/report"
	"github.com/rotblauer/airfoil/uncertain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// propagateCmd represents the propagate command
var propagateCmd = &cobra.Command{
	Use:   "propagate",
	Short: "Monte Carlo propagation of the pressure and temperature uncertainty",
	Long: `Draw --samples (pressure, temperature) pairs uniformly from the uncertainty
ranges, evaluate each at the manometer --height, and summarize the
density, velocity and lift over all draws.

Pressure bounds are kPa-scaled (75 to 101 by default); draws are converted
to Pa before evaluation. Draws outside the physical domain are counted as
rejected.

Note that lift reduces to area * manometer pressure difference, so it does
not move with pressure or temperature; density and velocity do.

Examples:

  airfoil propagate --samples 100000 --seed 42
  airfoil propagate --temperature-min -80 --format json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := common.InterruptContext(cmd.Context())
		defer stop()

		summary, err := uncertain.Propagate(ctx, cfg.Model, cfg.Scenario.Height, cfg.Ranges,
			uncertain.NewUniform(cfg.Seed), cfg.Samples)
		if err != nil {
			return err
		}
		if cfg.Format == params.FormatJSON {
			b, err := report.SummaryJSON(summary, cfg.Places)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		}
		return report.WriteSummary(cmd.OutOrStdout(), summary)
	},
}

func init() {
	rootCmd.AddCommand(propagateCmd)

	defaults := params.DefaultUncertaintyConfig()
	propagateCmd.Flags().Int("samples", defaults.Samples, "Number of draws")
	cobra.CheckErr(viper.BindPFlag("samples", propagateCmd.Flags().Lookup("samples")))

	propagateCmd.Flags().AddFlagSet(scenarioFlags)
	propagateCmd.Flags().AddFlagSet(outputFlags)
}

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
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/stream"
	"github.com/spf13/cobra"
	"log/slog"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate scenarios read as JSON lines from stdin",
	Long: `Read one JSON object per line from stdin and write one result line per scenario.

Attributes are pressure (Pa), temperature (C) and height (m).
Missing attributes take the --pressure, --temperature and --height values.
Lines that are not JSON objects, or scenarios outside the physical domain
(eg. temperature at or below -273 C, negative height), are logged and skipped.
So are lines longer than 1 MB.

Examples:

  echo '{"pressure":101325,"temperature":15}' | airfoil batch
  zcat readings.ndjson.gz | airfoil batch --height 0.035 --format json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := common.InterruptContext(cmd.Context())
		defer stop()

		tally, err := stream.Evaluate(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		if err != nil {
			return err
		}
		if tally.Rejected > 0 {
			slog.Warn("Some scenarios were rejected", "rejected", tally.Rejected, "read", tally.Read)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().AddFlagSet(scenarioFlags)
	batchCmd.Flags().AddFlagSet(outputFlags)
}

package commands

import (
	"fmt"
	"sunburden/lib/cliutil"
	"sunburden/services/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: scrape, join, normalize and fit.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		p := pipeline.New(config, keyNormalizer())

		result, err := p.Run(cmd.Context())
		if err != nil {
			cliutil.Fatal("pipeline run failed", err)
		}

		source := "live sources"
		if result.FromCache {
			source = config.CacheFilePath
		}

		t := cliutil.NewTable()
		t.AppendHeader(table.Row{"metric", "value"})
		t.AppendRow(table.Row{"records", len(result.Dataset)})
		t.AppendRow(table.Row{"source", source})
		t.AppendRow(table.Row{"train size", result.Fit.TrainSize})
		t.AppendRow(table.Row{"test size", result.Fit.TestSize})
		t.AppendRow(table.Row{"slope", fmt.Sprintf("%.4f", result.Fit.Slope)})
		t.AppendRow(table.Row{"intercept", fmt.Sprintf("%.4f", result.Fit.Intercept)})
		t.AppendRow(table.Row{"r²", fmt.Sprintf("%.4f", result.Fit.RSquared)})
		t.Render()
	},
}

package commands

import (
	"fmt"
	"sunburden/lib/cliutil"
	"sunburden/services/dataset"
	"sunburden/services/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var minCorrelation float64

func init() {
	suggestCmd.Flags().Float64Var(&minCorrelation, "min-correlation", 0.8, "discard alias pairs below this similarity")
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest country-name aliases for keys the join dropped.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		p := pipeline.New(config, keyNormalizer())

		left, right, err := p.SourceMaps(cmd.Context())
		if err != nil {
			cliutil.Fatal("failed to collect sources", err)
		}

		leftOnly, rightOnly := dataset.DroppedKeys(left, right, keyNormalizer())
		suggestions := dataset.SuggestAliases(leftOnly, rightOnly, minCorrelation)

		t := cliutil.NewTable()
		t.AppendHeader(table.Row{"daly source", "sun source", "correlation"})
		for _, s := range suggestions {
			t.AppendRow(table.Row{s.Left, s.Right, fmt.Sprintf("%.3f", s.Correlation)})
		}
		t.Render()
	},
}

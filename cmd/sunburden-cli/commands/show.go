package commands

import (
	"fmt"
	"sunburden/lib/cliutil"
	"sunburden/services/dataset"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted joined dataset.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()

		ds, err := dataset.ReadFile(config.CacheFilePath)
		if err != nil {
			cliutil.Fatal("failed to read joined dataset", err)
		}

		t := cliutil.NewTable()
		t.AppendHeader(table.Row{"country", "daly", "sunhours"})
		for _, record := range ds {
			t.AppendRow(table.Row{
				record.Country,
				fmt.Sprintf("%.2f", record.Daly),
				fmt.Sprintf("%.2f", record.SunHours),
			})
		}
		t.Render()
	},
}

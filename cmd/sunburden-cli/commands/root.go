package commands

import (
	"context"
	"fmt"
	"os"
	"sunburden/lib/cliutil"
	"sunburden/lib/configutil"
	"sunburden/lib/telemetry"
	"sunburden/services/dataset"
	"sunburden/services/pipeline"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	foldedKeys bool

	tel telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "sunburden-cli",
	Short: "sunburden-cli correlates country DALY rates with sunshine hours.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		t, err := telemetry.SetupFromEnv(cmd.Context(), "sunburden-cli")
		if err != nil && !os.IsNotExist(err) {
			cliutil.Fatal("failed to setup telemetry", err)
		}
		tel = t
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := tel.Shutdown(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json5", "path to the pipeline configuration file")
	rootCmd.PersistentFlags().BoolVar(&foldedKeys, "folded-keys", false, "match country names case- and whitespace-insensitively")
}

func loadConfig() pipeline.Config {
	config, err := configutil.ReadConfigOr(configPath, pipeline.DefaultConfig())
	if err != nil {
		cliutil.Fatal("failed to load configuration", err)
	}
	return config
}

func keyNormalizer() dataset.KeyNormalizer {
	if foldedKeys {
		return dataset.FoldedKey
	}
	return nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

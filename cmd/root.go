package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctvaccess/captvty-bridge/internal/config"
	"github.com/ctvaccess/captvty-bridge/internal/observability"
	"github.com/ctvaccess/captvty-bridge/internal/output"
	"github.com/ctvaccess/captvty-bridge/internal/version"
)

// cfg is the loaded configuration, available to all commands after
// PersistentPreRunE has run.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "captvty-bridge",
	Short: "Drive Captvty through its accessibility tree",
	Long: `captvty-bridge locates Captvty's custom-drawn controls geometrically and
drives them with synthetic input, so screen-reader users can select channels,
browse replay programs and schedule recordings without sighted assistance.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty

		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			if def := config.DefaultConfigPath(); def != "" {
				if _, err := os.Stat(def); err == nil {
					path = def
				}
			}
		}
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		observability.InitializeLogger(cfg.Logger)
		return nil
	}
}

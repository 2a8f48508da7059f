package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/config"
	"github.com/wordwebnav/wwn/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wwn",
	Short: "Turn Word documents saved as HTML into navigable web pages",
	Long: `WordWebNav takes a Word document saved as "Web Page, Filtered" and
generates a page with the document's table of contents in a resizable
navigation pane beside the document text, under an optional header bar.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if verbose {
		logging.SetLevel(slog.LevelDebug)
	}
	return cfg, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/site"
)

var assetsCmd = &cobra.Command{
	Use:   "assets <dir>",
	Short: "Write word_web_nav.css and word_web_nav.js",
	Long: `Renders the stylesheet and layout script from the configured layout
metrics into dir, the directory a page's scripts_directory_url points at.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		paths, err := site.WriteAssets(args[0], cfg.Layout.Metrics)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println("Wrote", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

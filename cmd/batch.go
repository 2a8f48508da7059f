package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/logging"
	"github.com/wordwebnav/wwn/internal/progress"
	"github.com/wordwebnav/wwn/internal/site"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Generate a page for every parameter file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().String("pattern", "", "parameter-file glob, ** allowed (overrides config)")
	batchCmd.Flags().Int("concurrency", 0, "max pages generated in parallel (overrides config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if pattern, _ := cmd.Flags().GetString("pattern"); pattern != "" {
		cfg.Batch.Pattern = pattern
	}
	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		cfg.Batch.MaxConcurrency = concurrency
	}

	dir := args[0]
	paths, err := site.FindParamFiles(dir, cfg.Batch.Pattern)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No parameter files matching %q in %s.\n", cfg.Batch.Pattern, dir)
		return nil
	}

	g := site.NewGenerator(cfg, logging.New("site"))
	reporter := progress.NewReporter("Generating pages")
	reporter.Start(len(paths))
	summary, err := g.GenerateAll(cmd.Context(), paths, cfg.Batch.MaxConcurrency, func(n int, path string) {
		reporter.Update(n, filepath.Base(path))
	})
	reporter.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d parameter files: %d succeeded, %d failed, %d warnings\n",
		summary.Processed, summary.Succeeded, len(summary.Failed), summary.Warnings)
	for _, f := range summary.Failed {
		fmt.Printf("  failed: %s: %v\n", f.ParamsPath, f.Err)
	}
	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d of %d pages failed", len(summary.Failed), summary.Processed)
	}
	return nil
}

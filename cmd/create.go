package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/config"
	"github.com/wordwebnav/wwn/internal/logging"
	"github.com/wordwebnav/wwn/internal/site"
)

var createCmd = &cobra.Command{
	Use:   "create [param-file]",
	Short: "Generate one page from a parameter file",
	Long: `Reads a parameter file, loads the Word HTML it names and writes the
WordWebNav page into the output directory. Prompts for the parameter file
when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var paramsPath string
	if len(args) == 1 {
		paramsPath = args[0]
	} else {
		paramsPath, err = config.PromptParamsPath()
		if err != nil {
			return err
		}
	}

	g := site.NewGenerator(cfg, logging.New("site"))
	res, err := g.GenerateFile(paramsPath)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s", res.OutputPath)
	if n := len(res.Warnings); n > 0 {
		fmt.Printf(" (%d warnings)", n)
	}
	fmt.Println()
	return nil
}

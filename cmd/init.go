package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [param-file]",
	Short: "Create a starter parameter file with an interactive wizard",
	Long: `Asks for the Word HTML file, the output directory and the scripts URL,
and writes a parameter file (default page.yml) ready for wwn create.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "page.yml"
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		_, err := config.RunWizard(path)
		return err
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing parameter file")
	rootCmd.AddCommand(initCmd)
}

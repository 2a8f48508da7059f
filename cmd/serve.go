package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wordwebnav/wwn/internal/logging"
	"github.com/wordwebnav/wwn/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <dir>",
	Short: "Preview generated pages in a local web server",
	Long: `Serves dir over HTTP. With --watch, open pages reload whenever a file
under dir changes, so re-running wwn create refreshes the browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload open pages when files change (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the served directory in a browser")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("serving %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("serving %s: not a directory", dir)
	}

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}
	if cmd.Flags().Changed("watch") {
		cfg.Serve.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if cmd.Flags().Changed("allow-all-origins") {
		cfg.Serve.AllowAll, _ = cmd.Flags().GetBool("allow-all-origins")
	}

	srv := server.New(server.Config{
		Port:     cfg.Serve.Port,
		Dir:      dir,
		AllowAll: cfg.Serve.AllowAll,
		Watch:    cfg.Serve.Watch,
	}, logging.New("server"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %s at %s\n", dir, srv.URL())
	if open, _ := cmd.Flags().GetBool("open"); open {
		server.OpenBrowser(srv.URL())
	}
	return srv.Start(ctx)
}

package cmd

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/db"
	"folio/internal/i18n"
	"folio/internal/progress"
	"folio/internal/server"
	"folio/internal/site"
	"folio/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site locally",
	Long:  `Builds the site if needed and serves it with the theme API, translations, and live reload on content changes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if flagPort, _ := cmd.Flags().GetInt("port"); flagPort > 0 {
		port = flagPort
	}

	scheme := theme.NewOSScheme(0)

	gen := site.NewGenerator(cfg)
	mode, err := initialMode(cmd)
	if err != nil {
		return err
	}
	if _, err := gen.Generate(progress.NewReporter(), mode); err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	database, err := db.Open(filepath.Join(cfg.DataDir, "folio.db"))
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer database.Close()

	bundle, err := i18n.Load(cfg.Translations, cfg.DefaultLanguage)
	if err != nil {
		// The page keeps its shipped language; serving continues.
		log.Printf("translations unavailable: %v", err)
		bundle = i18n.NewEmpty(cfg.DefaultLanguage)
	}

	srv := server.New(server.Config{Port: port, SiteDir: cfg.OutputDir}, database, bundle, scheme)

	if cfg.Server.LiveReload {
		stop := make(chan struct{})
		defer close(stop)
		go server.Watch([]string{cfg.ContentDir, cfg.AssetsDir}, 500*time.Millisecond, stop, func() {
			if _, err := gen.Generate(progress.Silent{}, theme.PreferenceSystem.Mode(scheme.Dark())); err != nil {
				warnf("rebuild failed: %v", err)
				return
			}
			srv.Reload()
			if verbose {
				log.Printf("content changed, site rebuilt")
			}
		})
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	if open, _ := cmd.Flags().GetBool("open"); open || cfg.Server.Open {
		go openBrowser(url)
	}

	fmt.Printf("Serving %s at %s (Ctrl+C to stop)\n", cfg.Title, url)
	return srv.Start()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/shot"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a full-page screenshot of the running site",
	Long:  `Launches headless Chrome against the local dev server and writes a full-page PNG. The server must already be running.`,
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	url := cfg.Screenshot.URL
	if url == "" {
		url = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	opts := shot.Options{
		URL:        url,
		OutputPath: cfg.Screenshot.OutputPath,
		Width:      cfg.Screenshot.Width,
		Height:     cfg.Screenshot.Height,
	}

	if err := shot.Capture(context.Background(), opts); err != nil {
		return err
	}

	successf("Screenshot saved to %s", opts.OutputPath)
	return nil
}

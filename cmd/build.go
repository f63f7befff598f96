package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/progress"
	"folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static portfolio site",
	Long:  `Renders the markdown sections, stylesheet, client script, and translation data into the output directory.`,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Seed the shipped markup with the OS preference so the first paint
	// matches what the client script derives for the system preference.
	mode, err := initialMode(cmd)
	if err != nil {
		return err
	}

	gen := site.NewGenerator(cfg)
	start := time.Now()
	n, err := gen.Generate(progress.NewReporter(), mode)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	successf("Site generated: %s (%d sections, %s)", cfg.OutputDir, n, time.Since(start).Round(time.Millisecond))
	return nil
}

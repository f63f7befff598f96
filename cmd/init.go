package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a folio configuration interactively",
	Long:  `Runs a short wizard and writes .folio.yml plus the content directory skeleton.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.RunWizard()
		exitOnError(err)

		// Seed the content directory so `folio build` works right away.
		exitOnError(os.MkdirAll(cfg.ContentDir, 0o755))
		exitOnError(os.MkdirAll(cfg.AssetsDir, 0o755))

		sample := cfg.ContentDir + "/01-about.md"
		if _, err := os.Stat(sample); os.IsNotExist(err) {
			exitOnError(os.WriteFile(sample, []byte("# About\n\nWrite something about yourself here.\n"), 0o644))
		}

		successf("Ready. Run `folio build` to generate your site.")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

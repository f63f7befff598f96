package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/theme"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// loadConfig reads and validates the configuration from the --config path.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// initialMode derives the effective mode a fresh visitor would see by
// running the theme controller once against the OS color scheme.
func initialMode(cmd *cobra.Command) (theme.Mode, error) {
	ctrl := theme.NewController(theme.NewMemoryStore(), theme.NewOSScheme(0), theme.NewState(), theme.MobileBreakpoint)
	defer ctrl.Close()
	if err := ctrl.Init(cmd.Context()); err != nil {
		return "", fmt.Errorf("deriving initial theme: %w", err)
	}
	return ctrl.Mode(), nil
}

func successf(format string, args ...any) {
	successColor.Printf(format+"\n", args...)
}

func warnf(format string, args ...any) {
	warnColor.Printf(format+"\n", args...)
}

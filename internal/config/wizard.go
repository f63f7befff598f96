package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio site.")
	fmt.Println()

	cfg := DefaultConfig()

	// Derive a default title from the working directory.
	defaultTitle := cfg.Title
	if wd, err := os.Getwd(); err == nil && filepath.Base(wd) != "." {
		defaultTitle = filepath.Base(wd)
	}

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaultTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	authorPrompt := promptui.Prompt{Label: "Author name"}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author prompt: %w", err)
	}
	cfg.Author = author

	langPrompt := promptui.Select{
		Label: "Default language",
		Items: []string{"en", "zh-TW", "zh-CN", "ja", "fr", "de", "es"},
	}
	_, lang, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.DefaultLanguage = lang

	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("invalid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".folio.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .folio.yml")
	fmt.Printf("Put your markdown sections in %s/ and run `folio build`.\n", cfg.ContentDir)

	return cfg, nil
}

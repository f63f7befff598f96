package config

// DefaultExcludes are asset glob patterns excluded from copying by default.
var DefaultExcludes = []string{
	".git/**",
	".DS_Store",
	"*.psd",
	"*.sketch",
	"node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:           "Portfolio",
		DefaultLanguage: "en",
		Translations:    "content/translations.json",
		ContentDir:      "content",
		AssetsDir:       "assets",
		Include:         []string{"**"},
		Exclude:         DefaultExcludes,
		OutputDir:       "site",
		DataDir:         ".folio",
		Server: ServerConfig{
			Port:       8080,
			LiveReload: true,
		},
		Screenshot: ScreenshotConfig{
			OutputPath: "screenshot.png",
			Width:      1440,
			Height:     900,
		},
	}
}

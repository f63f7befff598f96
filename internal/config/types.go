package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title           string           `yaml:"title" koanf:"title"`
	Author          string           `yaml:"author" koanf:"author"`
	Description     string           `yaml:"description" koanf:"description"`
	DefaultLanguage string           `yaml:"default_language" koanf:"default_language"`
	Translations    string           `yaml:"translations" koanf:"translations"`
	ContentDir      string           `yaml:"content_dir" koanf:"content_dir"`
	AssetsDir       string           `yaml:"assets_dir" koanf:"assets_dir"`
	Include         []string         `yaml:"include" koanf:"include"`
	Exclude         []string         `yaml:"exclude" koanf:"exclude"`
	OutputDir       string           `yaml:"output_dir" koanf:"output_dir"`
	DataDir         string           `yaml:"data_dir" koanf:"data_dir"`
	Server          ServerConfig     `yaml:"server" koanf:"server"`
	Screenshot      ScreenshotConfig `yaml:"screenshot" koanf:"screenshot"`
}

// ServerConfig holds dev-server settings.
type ServerConfig struct {
	Port       int  `yaml:"port" koanf:"port"`
	Open       bool `yaml:"open" koanf:"open"`
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}

// ScreenshotConfig holds settings for the screenshot utility.
type ScreenshotConfig struct {
	URL        string `yaml:"url" koanf:"url"`
	OutputPath string `yaml:"output_path" koanf:"output_path"`
	Width      int    `yaml:"width" koanf:"width"`
	Height     int    `yaml:"height" koanf:"height"`
}

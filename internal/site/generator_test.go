package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/config"
	"folio/internal/progress"
	"folio/internal/theme"
)

func setupContent(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Title = "Test Portfolio"
	cfg.Author = "Ada"
	cfg.ContentDir = filepath.Join(dir, "content")
	cfg.AssetsDir = filepath.Join(dir, "assets")
	cfg.OutputDir = filepath.Join(dir, "site")
	cfg.Translations = filepath.Join(dir, "content", "translations.json")

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		t.Fatal(err)
	}

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(cfg.ContentDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("01-about.md", "# About Me\n\nI build things.\n")
	write("02-projects.md", "# Projects\n\n```go\nfunc main() {}\n```\n")
	write("translations.json", `{"en":{"theme.dark":"Dark"},"zh-TW":{"theme.dark":"深色"}}`)

	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := setupContent(t)
	gen := NewGenerator(cfg)

	n, err := gen.Generate(progress.Silent{}, theme.ModeLight)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 2 {
		t.Errorf("sections = %d, want 2", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "translations.json"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)

	for _, want := range []string{
		`data-theme="light"`,
		`data-theme-option="dark"`,
		`id="theme-toolbar"`,
		`id="about"`,
		`id="projects"`,
		`data-i18n="theme.system"`,
		"Test Portfolio",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}

func TestGenerateSeedsDarkMode(t *testing.T) {
	cfg := setupContent(t)
	gen := NewGenerator(cfg)

	if _, err := gen.Generate(progress.Silent{}, theme.ModeDark); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	page, _ := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if !strings.Contains(string(page), `data-theme="dark"`) {
		t.Error("shipped markup should carry the seeded dark mode")
	}
}

func TestGenerateWithoutTranslations(t *testing.T) {
	cfg := setupContent(t)
	cfg.Translations = filepath.Join(t.TempDir(), "missing.json")
	gen := NewGenerator(cfg)

	// Missing translations must not fail the build.
	if _, err := gen.Generate(progress.Silent{}, theme.ModeLight); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "translations.json"))
	if err != nil {
		t.Fatalf("translations.json: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("translations.json = %s, want empty map", data)
	}
}

func TestGenerateNoContentFails(t *testing.T) {
	cfg := setupContent(t)
	cfg.ContentDir = t.TempDir()
	gen := NewGenerator(cfg)

	if _, err := gen.Generate(progress.Silent{}, theme.ModeLight); err == nil {
		t.Error("expected error with no markdown sections")
	}
}

func TestCopyAssets(t *testing.T) {
	cfg := setupContent(t)
	if err := os.MkdirAll(filepath.Join(cfg.AssetsDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(cfg.AssetsDir, "img", "me.png"), []byte("png"), 0o644)
	os.WriteFile(filepath.Join(cfg.AssetsDir, "raw.psd"), []byte("psd"), 0o644)

	gen := NewGenerator(cfg)
	if _, err := gen.Generate(progress.Silent{}, theme.ModeLight); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "img", "me.png")); err != nil {
		t.Errorf("included asset not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "raw.psd")); err == nil {
		t.Error("excluded asset was copied")
	}
}

func TestSectionID(t *testing.T) {
	cases := map[string]string{
		"01-about.md":    "about",
		"02-Projects.md": "projects",
		"intro.md":       "intro",
		"10-contact.md":  "contact",
	}
	for in, want := range cases {
		if got := sectionID(in); got != want {
			t.Errorf("sectionID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchGlobs(t *testing.T) {
	if !MatchesInclude("img/photo.png", []string{"**"}) {
		t.Error("** should include everything")
	}
	if !MatchesExclude("node_modules/pkg/index.js", []string{"node_modules/**"}) {
		t.Error("node_modules should be excluded")
	}
	if !MatchesExclude("deep/dir/.DS_Store", []string{".DS_Store"}) {
		t.Error("bare filename pattern should match in subdirectories")
	}
	if MatchesExclude("img/photo.png", []string{"*.psd"}) {
		t.Error("png should not match *.psd")
	}
}

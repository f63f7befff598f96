// Package site builds the static portfolio site: one HTML page rendered from
// markdown content, the stylesheet, the client script, and the translation
// data the script consumes.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"folio/internal/config"
	"folio/internal/i18n"
	"folio/internal/progress"
	"folio/internal/theme"
)

// Generator converts the configured content into the static site.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Section is one rendered content block of the page.
type Section struct {
	ID      string
	Title   string
	Content template.HTML
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title       string
	Author      string
	Description string
	Lang        string
	InitialMode theme.Mode
	Glyph       string
	Year        int
	Sections    []Section
}

// Generate builds the site into the output directory. Returns the number of
// sections rendered. mode seeds the data-theme attribute of the shipped
// markup so the first paint matches the server's view of the OS preference;
// the client script re-derives it immediately without an animation flash.
func (g *Generator) Generate(reporter progress.Reporter, mode theme.Mode) (int, error) {
	sections, err := g.renderSections()
	if err != nil {
		return 0, err
	}
	if len(sections) == 0 {
		return 0, fmt.Errorf("no markdown sections found in %s", g.cfg.ContentDir)
	}

	// Steps: page + css + js + translations + assets.
	reporter.Start(len(sections) + 4)
	step := 0
	bump := func(msg string) {
		step++
		reporter.Update(step, msg)
	}
	defer reporter.Finish()

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return 0, err
	}

	for _, s := range sections {
		bump("section " + s.ID)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{
		Title:       g.cfg.Title,
		Author:      g.cfg.Author,
		Description: g.cfg.Description,
		Lang:        g.cfg.DefaultLanguage,
		InitialMode: mode,
		Glyph:       theme.PreferenceSystem.Glyph(),
		Year:        time.Now().Year(),
		Sections:    sections,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	bump("index.html")

	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	bump("style.css")

	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	bump("script.js")

	if err := g.writeTranslations(); err != nil {
		return 0, err
	}
	bump("translations.json")

	copied, err := copyAssets(g.cfg.AssetsDir, g.cfg.OutputDir, g.cfg.Include, g.cfg.Exclude)
	if err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}
	bump(fmt.Sprintf("%d assets", copied))

	return len(sections), nil
}

// renderSections converts every top-level markdown file in the content dir
// into a page section, in filename order.
func (g *Generator) renderSections() ([]Section, error) {
	entries, err := os.ReadDir(g.cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("reading content dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var sections []Section
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(g.cfg.ContentDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		title, body := splitTitle(string(raw))

		var htmlBuf bytes.Buffer
		if err := md.Convert([]byte(body), &htmlBuf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", name, err)
		}

		id := sectionID(name)
		if title == "" {
			title = id
		}
		sections = append(sections, Section{
			ID:      id,
			Title:   title,
			Content: template.HTML(htmlBuf.String()),
		})
	}

	return sections, nil
}

// writeTranslations loads the translation mapping and embeds it in the site
// output. A load failure only logs: the page keeps the shipped language.
func (g *Generator) writeTranslations() error {
	bundle, err := i18n.Load(g.cfg.Translations, g.cfg.DefaultLanguage)
	if err != nil {
		log.Printf("site: translations unavailable: %v (keeping shipped language)", err)
		bundle = i18n.NewEmpty(g.cfg.DefaultLanguage)
	}

	data, err := json.Marshal(bundle.All())
	if err != nil {
		return fmt.Errorf("marshalling translations: %w", err)
	}
	return os.WriteFile(filepath.Join(g.cfg.OutputDir, "translations.json"), data, 0o644)
}

// splitTitle pulls the first # heading out of markdown content, returning
// the heading text and the remaining body.
func splitTitle(content string) (title, body string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "# ") {
			rest := append(append([]string{}, lines[:i]...), lines[i+1:]...)
			return strings.TrimPrefix(trimmed, "# "), strings.Join(rest, "\n")
		}
		break
	}
	return "", content
}

// sectionID derives a stable element ID from a content filename, dropping a
// numeric ordering prefix like "01-".
func sectionID(name string) string {
	id := strings.TrimSuffix(name, ".md")
	if i := strings.Index(id, "-"); i > 0 && i <= 3 {
		digits := true
		for _, r := range id[:i] {
			if r < '0' || r > '9' {
				digits = false
				break
			}
		}
		if digits {
			id = id[i+1:]
		}
	}
	return strings.ToLower(id)
}

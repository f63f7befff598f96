// Package i18n loads the translation mapping and resolves the best-matching
// language for a visitor. A load failure is never fatal: the page keeps the
// language the markup shipped with.
package i18n

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// Bundle maps language code -> (text key -> localized string).
type Bundle struct {
	langs    map[string]map[string]string
	fallback string
}

// New creates a Bundle from already-parsed data.
func New(data map[string]map[string]string, fallback string) *Bundle {
	if data == nil {
		data = make(map[string]map[string]string)
	}
	return &Bundle{langs: data, fallback: fallback}
}

// NewEmpty returns a bundle with no translations; Lookup always misses and
// Resolve always yields the fallback.
func NewEmpty(fallback string) *Bundle {
	return New(nil, fallback)
}

// Load reads the translation mapping from a local file or, when src starts
// with http:// or https://, fetches it over the network.
func Load(src, fallback string) (*Bundle, error) {
	var raw []byte
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetching translations: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching translations: status %d", resp.StatusCode)
		}
		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading translations: %w", err)
		}
	} else {
		var err error
		raw, err = os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("reading translations: %w", err)
		}
	}

	var data map[string]map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing translations: %w", err)
	}

	return New(data, fallback), nil
}

// Languages lists the available language codes, sorted.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.langs))
	for lang := range b.langs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the default language.
func (b *Bundle) Fallback() string { return b.fallback }

// Lookup returns the localized string for key in lang.
func (b *Bundle) Lookup(lang, key string) (string, bool) {
	m, ok := b.langs[lang]
	if !ok {
		return "", false
	}
	s, ok := m[key]
	return s, ok
}

// Strings returns the full key map for lang, or nil.
func (b *Bundle) Strings(lang string) map[string]string {
	return b.langs[lang]
}

// All returns the whole mapping, for embedding into the generated site.
func (b *Bundle) All() map[string]map[string]string {
	return b.langs
}

// Resolve picks the best available language for the requested locale:
// canonicalized exact match first, then base-language match, then the
// fallback.
func (b *Bundle) Resolve(requested string) string {
	return MatchLanguage(requested, b.Languages(), b.fallback)
}

package i18n

import "strings"

// Canonicalize collapses regional Chinese tags onto the two canonical codes:
// Traditional variants (zh-Hant, zh-TW, zh-HK, zh-MO) become zh-TW and
// Simplified variants (zh, zh-Hans, zh-CN, zh-SG) become zh-CN. Other tags
// pass through with normalized casing (lowercase language, as-given region).
func Canonicalize(tag string) string {
	if tag == "" {
		return ""
	}
	lower := strings.ToLower(strings.ReplaceAll(tag, "_", "-"))

	if lower == "zh" || strings.HasPrefix(lower, "zh-") {
		switch {
		case strings.Contains(lower, "hant"),
			strings.HasPrefix(lower, "zh-tw"),
			strings.HasPrefix(lower, "zh-hk"),
			strings.HasPrefix(lower, "zh-mo"):
			return "zh-TW"
		default:
			return "zh-CN"
		}
	}

	// Normalize e.g. "EN-us" -> "en-US".
	parts := strings.SplitN(lower, "-", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "-" + strings.ToUpper(parts[1])
}

// MatchLanguage returns the best language from available for the requested
// locale. Exact canonical match wins, then a base-language match (fr-CA
// matches fr, and fr matches fr-FR), then fallback.
func MatchLanguage(requested string, available []string, fallback string) string {
	want := Canonicalize(requested)
	if want == "" {
		return fallback
	}

	for _, lang := range available {
		if Canonicalize(lang) == want {
			return lang
		}
	}

	wantBase := baseLang(want)
	for _, lang := range available {
		if baseLang(Canonicalize(lang)) == wantBase {
			return lang
		}
	}

	return fallback
}

func baseLang(tag string) string {
	if i := strings.Index(tag, "-"); i >= 0 {
		return tag[:i]
	}
	return tag
}

package i18n

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

type contextKey struct{}

// Middleware resolves the request language from the Accept-Language header
// and stores it on the request context.
func Middleware(b *Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := b.fallback
			if header := r.Header.Get("Accept-Language"); header != "" {
				for _, tag := range parseAcceptLanguage(header) {
					if resolved := b.Resolve(tag); resolved != b.fallback || Canonicalize(tag) == Canonicalize(b.fallback) {
						lang = resolved
						break
					}
				}
			}
			ctx := context.WithValue(r.Context(), contextKey{}, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the resolved language, or "" when the middleware did
// not run.
func FromContext(ctx context.Context) string {
	lang, _ := ctx.Value(contextKey{}).(string)
	return lang
}

// parseAcceptLanguage returns the header's language tags ordered by quality.
func parseAcceptLanguage(header string) []string {
	type weighted struct {
		tag string
		q   float64
	}

	var tags []weighted
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag := part
		q := 1.0
		if i := strings.Index(part, ";"); i >= 0 {
			tag = strings.TrimSpace(part[:i])
			params := part[i+1:]
			if j := strings.Index(params, "q="); j >= 0 {
				if v, err := strconv.ParseFloat(strings.TrimSpace(params[j+2:]), 64); err == nil {
					q = v
				}
			}
		}
		if tag == "" || tag == "*" {
			continue
		}
		tags = append(tags, weighted{tag: tag, q: q})
	}

	sort.SliceStable(tags, func(i, j int) bool { return tags[i].q > tags[j].q })

	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.tag
	}
	return out
}

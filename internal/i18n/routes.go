package i18n

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the translation endpoints under /api/translations.
func RegisterRoutes(r chi.Router, b *Bundle) {
	r.Route("/api/translations", func(r chi.Router) {
		r.Get("/", handleAll(b))
		r.Get("/{lang}", handleLang(b))
	})
}

func handleAll(b *Bundle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.All())
	}
}

func handleLang(b *Bundle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := b.Resolve(chi.URLParam(r, "lang"))
		table := b.Strings(lang)
		if table == nil {
			http.Error(w, "language not available", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package theme

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/db"
)

// sessionCookie identifies a visitor so their preference survives reloads.
const sessionCookie = "folio_session"

// RegisterRoutes mounts the theme preference endpoints under /api/theme.
func RegisterRoutes(r chi.Router, database *db.DB, scheme SchemeSource) {
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", handleGet(database, scheme))
		r.Put("/", handlePut(database, scheme))
	})
}

// themeResponse reports the stored preference and the derived effective mode.
type themeResponse struct {
	Preference Preference `json:"preference"`
	Mode       Mode       `json:"mode"`
}

// themeRequest is the PUT body.
type themeRequest struct {
	Preference string `json:"preference"`
}

func handleGet(database *db.DB, scheme SchemeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := NewSQLiteStore(database, sessionID(w, r))

		pref, err := store.Load(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, themeResponse{
			Preference: pref,
			Mode:       pref.Mode(scheme.Dark()),
		})
	}
}

func handlePut(database *db.DB, scheme SchemeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		pref, err := ParsePreference(req.Preference)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		store := NewSQLiteStore(database, sessionID(w, r))
		if err := store.Save(r.Context(), pref); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, themeResponse{
			Preference: pref,
			Mode:       pref.Mode(scheme.Dark()),
		})
	}
}

// sessionID returns the visitor's session ID, setting a new cookie when the
// request carries none.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

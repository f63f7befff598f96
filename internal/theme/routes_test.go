package theme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"folio/internal/db"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	r := chi.NewRouter()
	RegisterRoutes(r, database, NewStaticScheme(true))
	return r
}

func TestGetThemeDefaults(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/theme/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp themeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Preference != PreferenceSystem {
		t.Errorf("preference = %q, want system", resp.Preference)
	}
	// Scheme source reports dark, so system derives dark.
	if resp.Mode != ModeDark {
		t.Errorf("mode = %q, want dark", resp.Mode)
	}

	// First contact sets a session cookie.
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a session cookie on first request")
	}
}

func TestPutThemeRoundTrip(t *testing.T) {
	router := setupRouter(t)

	put := httptest.NewRequest(http.MethodPut, "/api/theme/", strings.NewReader(`{"preference":"dark"}`))
	putRec := httptest.NewRecorder()
	router.ServeHTTP(putRec, put)

	if putRec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d: %s", putRec.Code, putRec.Body.String())
	}

	cookies := putRec.Result().Cookies()

	get := httptest.NewRequest(http.MethodGet, "/api/theme/", nil)
	for _, c := range cookies {
		get.AddCookie(c)
	}
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)

	var resp themeResponse
	if err := json.NewDecoder(getRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Preference != PreferenceDark {
		t.Errorf("preference = %q, want dark", resp.Preference)
	}
	if resp.Mode != ModeDark {
		t.Errorf("mode = %q, want dark", resp.Mode)
	}
}

func TestPutThemeRejectsUnknownValue(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/theme/", strings.NewReader(`{"preference":"sepia"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPutThemeRejectsBadBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/theme/", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

package shot

import (
	"testing"
	"time"
)

func TestWithDefaults(t *testing.T) {
	o := Options{}.withDefaults()

	if o.URL != "http://localhost:8080" {
		t.Errorf("URL = %q", o.URL)
	}
	if o.OutputPath != "screenshot.png" {
		t.Errorf("OutputPath = %q", o.OutputPath)
	}
	if o.Width != 1440 || o.Height != 900 {
		t.Errorf("viewport = %dx%d, want 1440x900", o.Width, o.Height)
	}
	if o.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", o.Timeout)
	}
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	o := Options{
		URL:        "http://localhost:9000",
		OutputPath: "out/shot.png",
		Width:      800,
		Height:     600,
		Timeout:    5 * time.Second,
	}.withDefaults()

	if o.URL != "http://localhost:9000" || o.OutputPath != "out/shot.png" {
		t.Errorf("explicit values overwritten: %+v", o)
	}
	if o.Width != 800 || o.Height != 600 || o.Timeout != 5*time.Second {
		t.Errorf("explicit values overwritten: %+v", o)
	}
}

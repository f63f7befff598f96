package theme

import (
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

// OSScheme reads the operating system's color-scheme preference and polls it
// for changes. It is the server-side analog of the prefers-color-scheme
// media query.
type OSScheme struct {
	interval time.Duration

	mu       sync.Mutex
	dark     bool
	watchers map[int]func(dark bool)
	nextID   int
	stopPoll chan struct{}
}

// NewOSScheme creates a scheme source polling at the given interval. An
// interval of zero disables polling; Dark still detects on demand.
func NewOSScheme(interval time.Duration) *OSScheme {
	s := &OSScheme{
		interval: interval,
		dark:     detectDark(),
		watchers: make(map[int]func(bool)),
	}
	return s
}

// Dark reports the last detected OS preference.
func (s *OSScheme) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Notify registers a change callback and starts the poll loop on first use.
func (s *OSScheme) Notify(fn func(dark bool)) (stop func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	if s.stopPoll == nil && s.interval > 0 {
		s.stopPoll = make(chan struct{})
		go s.poll(s.stopPoll)
	}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
		if len(s.watchers) == 0 && s.stopPoll != nil {
			close(s.stopPoll)
			s.stopPoll = nil
		}
	}
}

func (s *OSScheme) poll(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			dark := detectDark()
			s.mu.Lock()
			changed := dark != s.dark
			s.dark = dark
			var fns []func(bool)
			if changed {
				for _, fn := range s.watchers {
					fns = append(fns, fn)
				}
			}
			s.mu.Unlock()
			for _, fn := range fns {
				fn(dark)
			}
		}
	}
}

// detectDark queries OS settings for a dark-mode preference. Falls back to
// light when detection is unavailable.
func detectDark() bool {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwinDark()
	case "linux":
		return detectLinuxDark()
	default:
		return false
	}
}

// detectDarwinDark checks AppleInterfaceStyle; the key is absent in light mode.
func detectDarwinDark() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "Dark"
}

// detectLinuxDark checks the GNOME color-scheme key (GNOME 42+), then the
// GTK theme name.
func detectLinuxDark() bool {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err == nil {
		lower := strings.ToLower(string(out))
		if strings.Contains(lower, "dark") {
			return true
		}
		if strings.Contains(lower, "light") {
			return false
		}
	}

	out, err = exec.Command("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme").Output()
	return err == nil && strings.Contains(strings.ToLower(string(out)), "dark")
}

// StaticScheme is a SchemeSource with a settable value, used in tests and as
// a fixed fallback when OS detection is disabled.
type StaticScheme struct {
	mu       sync.Mutex
	dark     bool
	watchers []func(dark bool)
}

// NewStaticScheme returns a source fixed at the given value until Set is called.
func NewStaticScheme(dark bool) *StaticScheme {
	return &StaticScheme{dark: dark}
}

func (s *StaticScheme) Dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set changes the reported preference and fires registered callbacks.
func (s *StaticScheme) Set(dark bool) {
	s.mu.Lock()
	s.dark = dark
	fns := make([]func(bool), len(s.watchers))
	copy(fns, s.watchers)
	s.mu.Unlock()
	for _, fn := range fns {
		if fn != nil {
			fn(dark)
		}
	}
}

func (s *StaticScheme) Notify(fn func(dark bool)) (stop func()) {
	s.mu.Lock()
	idx := len(s.watchers)
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.watchers[idx] = nil
	}
}

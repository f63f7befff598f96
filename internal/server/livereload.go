package server

import (
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReloadHub tracks live-reload websocket clients.
type ReloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewReloadHub returns an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{conns: make(map[*websocket.Conn]struct{})}
}

// Handle upgrades the request and keeps the connection until the client
// drops it.
func (h *ReloadHub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends a reload message to every connected client.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Watch polls the given directories for modification-time changes and calls
// onChange after each detected change. It blocks until stop is closed.
func Watch(dirs []string, interval time.Duration, stop <-chan struct{}, onChange func()) {
	last := snapshot(dirs)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			current := snapshot(dirs)
			if changed(last, current) {
				last = current
				onChange()
			}
		}
	}
}

// snapshot records the newest mtime and file count per directory tree.
func snapshot(dirs []string) map[string]int64 {
	out := make(map[string]int64)
	for _, dir := range dirs {
		var newest int64
		var count int64
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if m := info.ModTime().UnixNano(); m > newest {
				newest = m
			}
			count++
			return nil
		})
		out[dir] = newest + count
	}
	return out
}

func changed(a, b map[string]int64) bool {
	if len(a) != len(b) {
		return true
	}
	for k, v := range a {
		if b[k] != v {
			return true
		}
	}
	return false
}

package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(0, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "combat.yaml")
	if err := os.WriteFile(path, []byte("hit_damage: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for spec write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(0, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(0, t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestShouldEmitDebounces(t *testing.T) {
	w := &Watcher{debounce: 50 * time.Millisecond, lastSeen: make(map[string]time.Time)}
	now := time.Now()

	if !w.shouldEmit("combat.yaml", now) {
		t.Fatalf("first event should pass")
	}
	if w.shouldEmit("combat.yaml", now.Add(10*time.Millisecond)) {
		t.Fatalf("event inside the debounce window should be dropped")
	}
	if !w.shouldEmit("dialogue.yaml", now.Add(10*time.Millisecond)) {
		t.Fatalf("debounce is per path")
	}
	if !w.shouldEmit("combat.yaml", now.Add(60*time.Millisecond)) {
		t.Fatalf("event past the debounce window should pass")
	}
}

func TestIsSpecFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"combat.yaml", true},
		{"combat.YML", true},
		{"combat.json", false},
		{"combat.yaml~", false},
	}
	for _, c := range cases {
		if got := isSpecFile(c.path); got != c.want {
			t.Errorf("isSpecFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

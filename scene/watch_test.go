package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T) (*Watcher, string, string) {
	t.Helper()
	dir := t.TempDir()
	target := filepath.Join(dir, "level.yaml")
	sibling := filepath.Join(dir, "other.yaml")
	for _, path := range []string{target, sibling} {
		if err := os.WriteFile(path, []byte("id: s\n"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, target, sibling
}

func TestWatcherReportsTargetWrites(t *testing.T) {
	w, target, _ := newTestWatcher(t)

	if err := os.WriteFile(target, []byte("id: edited\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got, ok := <-w.Events:
		if !ok {
			t.Fatalf("events channel closed before the write was reported")
		}
		if got != w.target {
			t.Fatalf("event path = %q, want %q", got, w.target)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("write to the watched file was never reported")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	w, _, sibling := newTestWatcher(t)

	if err := os.WriteFile(sibling, []byte("id: other\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("sibling write reported as %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMatchesTarget(t *testing.T) {
	w, target, sibling := newTestWatcher(t)

	cases := []struct {
		name string
		path string
		want bool
	}{
		{"target", target, true},
		{"sibling", sibling, false},
		{"other_dir", filepath.Join(t.TempDir(), "level.yaml"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.matchesTarget(c.path); got != c.want {
				t.Fatalf("matchesTarget(%q) = %v, want %v", c.path, got, c.want)
			}
		})
	}
}

func TestWatcherDebounce(t *testing.T) {
	w, _, _ := newTestWatcher(t)

	base := time.Now()
	if !w.shouldEmit(base) {
		t.Fatalf("first event should emit")
	}
	if w.shouldEmit(base.Add(watchDebounce / 2)) {
		t.Fatalf("event inside the debounce window should be swallowed")
	}
	if !w.shouldEmit(base.Add(watchDebounce * 2)) {
		t.Fatalf("event past the debounce window should emit")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, _, _ := newTestWatcher(t)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// idempotent
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event after Close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel never closed")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "level.yaml")); err == nil {
		t.Fatalf("watching a file in a missing directory should fail")
	}
}

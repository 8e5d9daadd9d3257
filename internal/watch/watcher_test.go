package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func waitForFires(t *testing.T, fires *atomic.Int32, want int32, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fires.Load() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected %d debounced signals within %v, got %d", want, timeout, fires.Load())
}

func TestWatcherSignalsOnTargetWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.pdf")
	writeFile(t, target, "v1")

	var fires atomic.Int32
	w, err := NewWatcher(target, MinQuietWindow, func() { fires.Add(1) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, target, "v2")
	waitForFires(t, &fires, 1, 3*time.Second)
}

func TestWatcherCoalescesRewriteBurst(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.pdf")
	writeFile(t, target, "v1")

	var fires atomic.Int32
	w, err := NewWatcher(target, MinQuietWindow, func() { fires.Add(1) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// delete+recreate, as some editors save
	if err := os.Remove(target); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	writeFile(t, target, "v2")
	writeFile(t, target, "v3")

	waitForFires(t, &fires, 1, 3*time.Second)
	// Let any stray timer expire: the burst must have coalesced to one.
	time.Sleep(2 * MinQuietWindow)
	if got := fires.Load(); got != 1 {
		t.Errorf("Expected 1 coalesced signal for the burst, got %d", got)
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.pdf")
	writeFile(t, target, "v1")

	var fires atomic.Int32
	w, err := NewWatcher(target, MinQuietWindow, func() { fires.Add(1) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.pdf"), "x")
	time.Sleep(2 * MinQuietWindow)
	if got := fires.Load(); got != 0 {
		t.Errorf("Expected no signal for sibling file writes, got %d", got)
	}
}

func TestWatcherRelevantOps(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.pdf")
	writeFile(t, target, "v1")

	w, err := NewWatcher(target, MinQuietWindow, func() {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write to target", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create of target", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"rename away", fsnotify.Event{Name: target, Op: fsnotify.Rename}, false},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"write to sibling", fsnotify.Event{Name: filepath.Join(dir, "x.pdf"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := w.relevant(tt.ev); got != tt.want {
			t.Errorf("%s: expected relevant=%v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestWatcherResolvesSymlinkTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.pdf")
	link := filepath.Join(dir, "doc-link.pdf")
	writeFile(t, target, "v1")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	var fires atomic.Int32
	w, err := NewWatcher(link, MinQuietWindow, func() { fires.Add(1) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// A write to the resolved target must signal even though we were given
	// the symlink.
	writeFile(t, target, "v2")
	waitForFires(t, &fires, 1, 3*time.Second)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsPairNames(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir).Watch()
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.log"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "grass.txt"), []byte("16\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "grass" {
			t.Fatalf("expected grass, got %q", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestWatcherReportsAfterBurstSettles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "grass.bmp")
	full := make([]byte, 512)
	copy(full, "BM")
	if err := os.WriteFile(path, full[:2], 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, full, 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "grass" {
			t.Fatalf("expected grass, got %q", name)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != int64(len(full)) {
			t.Fatalf("event fired on a partial file of %d bytes", info.Size())
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice, second %q", name)
	case <-time.After(3 * debounce):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTextFile_Reloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.txt")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changes := make(chan string, 8)
	w, err := WatchTextFile(path, "utf-8", func(text string) { changes <- text })
	if err != nil {
		t.Fatalf("WatchTextFile failed: %v", err)
	}
	defer w.Close()

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("second\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case text := <-changes:
			if text == "noise" {
				t.Fatal("expected other files to be ignored")
			}
			if text == "second\n" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchTextFile_UnknownEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.txt")
	if _, err := WatchTextFile(path, "klingon", func(string) {}); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestTextWatcher_CloseTwice(t *testing.T) {
	w, err := WatchTextFile(filepath.Join(t.TempDir(), "page.txt"), "", func(string) {})
	if err != nil {
		t.Fatalf("WatchTextFile failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

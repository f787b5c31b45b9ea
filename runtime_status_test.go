package main

import (
	"strings"
	"testing"
)

func TestRuntimeStatus_NoDisplay(t *testing.T) {
	var store runtimeStatusStore
	if lines := store.snapshot().lines(); lines != nil {
		t.Fatalf("expected no status lines, got %q", lines)
	}
}

func TestRuntimeStatus_Lines(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Cols, cfg.Rows = 3, 2
	rp := newTestRenderPass(t, cfg)
	rp.LoadText("abcdefgh")

	var store runtimeStatusStore
	store.setDisplay(rp, nil, "terminal")
	store.setSource("page.txt")
	lines := store.snapshot().lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 status lines, got %d", len(lines))
	}
	for _, want := range []string{"2/2 rows", "3x2 grid", "6 chars", "OVERFLOW", "page.txt"} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("expected %q in %q", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "FRAME 0") || !strings.Contains(lines[1], "400x300") || !strings.Contains(lines[1], "terminal") {
		t.Fatalf("unexpected frame line %q", lines[1])
	}
	if strings.Contains(lines[1], "SPLASH") {
		t.Fatal("expected no splash marker")
	}
}

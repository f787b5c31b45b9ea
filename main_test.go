package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyScreenFlag(t *testing.T) {
	loaded := DefaultScreenConfig()
	loaded.Width = 320
	loaded.Foreground = "amber"

	flags := DefaultScreenConfig()
	flags.Foreground = "green"
	flags.Cols = 40

	for _, name := range []string{"fg", "cols", "version"} {
		applyScreenFlag(&loaded, flags, name)
	}
	if loaded.Foreground != "green" || loaded.Cols != 40 {
		t.Fatalf("expected set flags to win, got %+v", loaded)
	}
	if loaded.Width != 320 {
		t.Fatalf("expected unset flags to keep the file value, got width %d", loaded.Width)
	}
}

func TestLoadScreenText_Order(t *testing.T) {
	geometry := FrameGeometry{Cols: 57, Rows: 23}
	dir := t.TempDir()
	script := filepath.Join(dir, "page.lua")
	file := filepath.Join(dir, "page.txt")
	os.WriteFile(script, []byte(`print("from script")`), 0o644)
	os.WriteFile(file, []byte("from file"), 0o644)

	cases := []struct {
		opts   displayOptions
		text   string
		source string
	}{
		{displayOptions{script: script, textFile: file, text: "x"}, "from script\n", script},
		{displayOptions{textFile: file, text: "x"}, "from file", file},
		{displayOptions{text: `a\nb`}, "a\nb", ""},
		{displayOptions{}, defaultScreenText, ""},
	}
	for i, tc := range cases {
		tc.opts.screen = DefaultScreenConfig()
		text, source, err := loadScreenText(tc.opts, geometry)
		if err != nil {
			t.Fatalf("case %d: loadScreenText failed: %v", i, err)
		}
		if text != tc.text || source != tc.source {
			t.Fatalf("case %d: expected %q from %q, got %q from %q", i, tc.text, tc.source, text, source)
		}
	}
}

func TestRunDisplay_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	opts := displayOptions{
		screen:  DefaultScreenConfig(),
		text:    "PCD-68",
		pngPath: path,
	}
	if err := runDisplay(opts); err != nil {
		t.Fatalf("runDisplay failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("expected 400x300 frame, got %v", b)
	}
}

func TestRunDisplay_RejectsOverflowingGrid(t *testing.T) {
	screen := DefaultScreenConfig()
	screen.Cols = 80
	opts := displayOptions{screen: screen, pngPath: filepath.Join(t.TempDir(), "frame.png")}
	if err := runDisplay(opts); err == nil {
		t.Fatal("expected 80 columns of the built-in font to be rejected")
	}
}

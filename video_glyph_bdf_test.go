package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testBDF = `STARTFONT 2.1
FONT -Misc-Fixed-Medium-R-Normal--13-120-75-75-C-50-ISO10646-1
SIZE 13 75 75
FONTBOUNDINGBOX 5 13 0 -2
STARTPROPERTIES 2
FONT_ASCENT 11
FONT_DESCENT 2
ENDPROPERTIES
CHARS 5
STARTCHAR space
ENCODING 32
DWIDTH 5 0
BBX 5 0 0 0
BITMAP
ENDCHAR
STARTCHAR A
ENCODING 65
DWIDTH 5 0
BBX 5 3 0 0
BITMAP
20
50
F8
ENDCHAR
STARTCHAR g
ENCODING 103
DWIDTH 5 0
BBX 5 2 0 -2
BITMAP
88
70
ENDCHAR
STARTCHAR i
ENCODING 105
DWIDTH 5 0
BBX 1 2 2 0
BITMAP
80
80
ENDCHAR
STARTCHAR unnamed
ENCODING -1
BBX 5 1 0 0
BITMAP
F8
ENDCHAR
ENDFONT
`

func parseTestBDF(t *testing.T, src string) *GlyphTable {
	t.Helper()
	table, err := ParseBDF(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseBDF failed: %v", err)
	}
	return table
}

func inkSet(g *Glyph) map[[2]int]bool {
	set := make(map[[2]int]bool)
	for px := range g.Pixels() {
		if px.Ink {
			set[[2]int{px.X, px.Y}] = true
		}
	}
	return set
}

func TestParseBDF_CellAndGlyphs(t *testing.T) {
	table := parseTestBDF(t, testBDF)
	w, h := table.GlyphSize()
	if w != 5 || h != 13 {
		t.Fatalf("expected 5x13 cells, got %dx%d", w, h)
	}
	if table.Len() != 4 {
		t.Fatalf("expected 4 glyphs (unencoded one skipped), got %d", table.Len())
	}

	cases := map[rune][][2]int{
		'A': {{2, 8}, {1, 9}, {3, 9}, {0, 10}, {1, 10}, {2, 10}, {3, 10}, {4, 10}},
		'g': {{0, 11}, {4, 11}, {1, 12}, {2, 12}, {3, 12}},
		'i': {{2, 9}, {2, 10}},
		' ': nil,
	}
	for r, want := range cases {
		got := inkSet(table.GlyphFor(r))
		if len(got) != len(want) {
			t.Fatalf("glyph %q: expected %d ink pixels, got %d", r, len(want), len(got))
		}
		for _, pos := range want {
			if !got[pos] {
				t.Fatalf("glyph %q: expected ink at %v", r, pos)
			}
		}
	}
}

func TestParseBDF_AscentFromBoundingBox(t *testing.T) {
	src := strings.NewReplacer("FONT_ASCENT 11\n", "", "FONT_DESCENT 2\n", "").Replace(testBDF)
	table := parseTestBDF(t, src)
	if _, h := table.GlyphSize(); h != 13 {
		t.Fatalf("expected 13-pixel cells, got %d", h)
	}
	if !table.GlyphFor('g').Ink(0, 11) {
		t.Fatal("expected descender below the baseline")
	}
}

func TestParseBDF_Errors(t *testing.T) {
	cases := map[string]string{
		"no bounding box": strings.Replace(testBDF, "FONTBOUNDINGBOX 5 13 0 -2\n", "", 1),
		"bad bitmap row":  strings.Replace(testBDF, "F8\nENDCHAR\nSTARTCHAR g", "ZZ\nENDCHAR\nSTARTCHAR g", 1),
		"bad BBX":         strings.Replace(testBDF, "BBX 5 3 0 0", "BBX 5 3", 1),
		"stray ENDCHAR":   "FONTBOUNDINGBOX 5 13 0 -2\nENDCHAR\n",
	}
	for name, src := range cases {
		if _, err := ParseBDF(strings.NewReader(src)); !errors.Is(err, ErrInvalidFont) {
			t.Fatalf("%s: expected ErrInvalidFont, got %v", name, err)
		}
	}
}

func TestParseBDF_ReferenceGrid(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Cols, cfg.Rows = 80, 23
	rp, err := NewRenderPass(cfg, parseTestBDF(t, testBDF))
	if err != nil {
		t.Fatalf("NewRenderPass failed: %v", err)
	}
	if rp.Geometry() != referenceGeometry {
		t.Fatalf("expected %s, got %s", referenceGeometry, rp.Geometry())
	}
	rp.LoadText("A")
	buf := make([]byte, rp.Geometry().BufferSize())
	if err := rp.Render(buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := pixelAt(buf, 400, 2, 8); got != PixelBlack {
		t.Fatalf("expected the apex of 'A' at (2,8), got %v", got)
	}
}

func TestLoadBDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "5x13.bdf")
	if err := os.WriteFile(path, []byte(testBDF), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	table, err := loadGlyphs(path)
	if err != nil {
		t.Fatalf("loadGlyphs failed: %v", err)
	}
	if !table.Has('A') {
		t.Fatal("expected the BDF glyphs")
	}
	if _, err := LoadBDFFile(filepath.Join(t.TempDir(), "missing.bdf")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	builtin, err := loadGlyphs("")
	if err != nil {
		t.Fatalf("loadGlyphs failed: %v", err)
	}
	if w, _ := builtin.GlyphSize(); w != 7 {
		t.Fatalf("expected the built-in 7-wide font, got %d", w)
	}
}

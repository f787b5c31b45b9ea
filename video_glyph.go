// video_glyph.go - Bitmap glyphs and glyph tables for the PCD-68 display

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"iter"
)

// maxGlyphWidth is the widest glyph a single row mask can hold.
const maxGlyphWidth = 32

// GlyphPixel is one pixel of a glyph's bounding box.
type GlyphPixel struct {
	X, Y int
	Ink  bool
}

// Glyph is an immutable ink bitmap. Each row is a mask with the leftmost
// pixel in bit width-1, the same order BDF bitmaps use.
type Glyph struct {
	width  int
	height int
	mask   []uint32
}

// GlyphSource resolves characters to glyphs. GlyphFor never fails: runes
// without a bitmap resolve to the glyph for a space.
type GlyphSource interface {
	GlyphFor(r rune) *Glyph
	GlyphSize() (width, height int)
}

// NewGlyph builds a glyph from row masks. Missing trailing rows are blank
// and bits outside the glyph width are ignored.
func NewGlyph(width, height int, mask []uint32) (*Glyph, error) {
	if width <= 0 || width > maxGlyphWidth || height <= 0 {
		return nil, &VideoError{
			Operation: "glyph creation",
			Details:   fmt.Sprintf("unsupported glyph size %dx%d", width, height),
			Err:       ErrInvalidGeometry,
		}
	}
	if len(mask) > height {
		return nil, &VideoError{
			Operation: "glyph creation",
			Details:   fmt.Sprintf("%d rows do not fit a glyph %d rows tall", len(mask), height),
			Err:       ErrInvalidGeometry,
		}
	}
	limit := uint32(uint64(1)<<width - 1)
	rows := make([]uint32, height)
	for i, m := range mask {
		rows[i] = m & limit
	}
	return &Glyph{width: width, height: height, mask: rows}, nil
}

// ParseGlyph builds a glyph from rows drawn with 'X' or '#' for ink and any
// other byte for paper. The glyph is as wide as the longest row.
func ParseGlyph(rows ...string) (*Glyph, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	mask, err := parseGlyphRows(width, rows)
	if err != nil {
		return nil, err
	}
	return NewGlyph(width, len(rows), mask)
}

func parseGlyphRows(width int, rows []string) ([]uint32, error) {
	if width > maxGlyphWidth {
		return nil, &VideoError{
			Operation: "glyph parse",
			Details:   fmt.Sprintf("rows are %d pixels wide, limit is %d", width, maxGlyphWidth),
			Err:       ErrInvalidGeometry,
		}
	}
	mask := make([]uint32, len(rows))
	for y, row := range rows {
		if len(row) > width {
			return nil, &VideoError{
				Operation: "glyph parse",
				Details:   fmt.Sprintf("row %d is %d pixels wide, glyph is %d", y, len(row), width),
				Err:       ErrInvalidGeometry,
			}
		}
		for x := 0; x < len(row); x++ {
			if row[x] == 'X' || row[x] == '#' {
				mask[y] |= 1 << (width - 1 - x)
			}
		}
	}
	return mask, nil
}

func (g *Glyph) Width() int  { return g.width }
func (g *Glyph) Height() int { return g.height }

// Ink reports whether (x, y) is inked. Coordinates outside the glyph are paper.
func (g *Glyph) Ink(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.mask[y]&(1<<(g.width-1-x)) != 0
}

// Pixels yields every pixel of the bounding box in row-major order, paper
// pixels included. The sequence can be ranged over any number of times.
func (g *Glyph) Pixels() iter.Seq[GlyphPixel] {
	return func(yield func(GlyphPixel) bool) {
		for y := range g.height {
			row := g.mask[y]
			for x := range g.width {
				if !yield(GlyphPixel{X: x, Y: y, Ink: row&(1<<(g.width-1-x)) != 0}) {
					return
				}
			}
		}
	}
}

// GlyphTable is a fixed-size glyph lookup keyed by rune.
type GlyphTable struct {
	width    int
	height   int
	glyphs   map[rune]*Glyph
	fallback *Glyph
}

// NewGlyphTable returns an empty table. Until a space glyph is added the
// fallback is a blank glyph of the table size.
func NewGlyphTable(width, height int) (*GlyphTable, error) {
	blank, err := NewGlyph(width, height, nil)
	if err != nil {
		return nil, err
	}
	return &GlyphTable{
		width:    width,
		height:   height,
		glyphs:   make(map[rune]*Glyph),
		fallback: blank,
	}, nil
}

// Add maps r to g. The glyph must match the table size.
func (t *GlyphTable) Add(r rune, g *Glyph) error {
	if g.width != t.width || g.height != t.height {
		return &VideoError{
			Operation: "glyph table",
			Details:   fmt.Sprintf("glyph %q is %dx%d, table is %dx%d", r, g.width, g.height, t.width, t.height),
			Err:       ErrInvalidGeometry,
		}
	}
	t.glyphs[r] = g
	if r == ' ' {
		t.fallback = g
	}
	return nil
}

func (t *GlyphTable) AddMask(r rune, mask []uint32) error {
	g, err := NewGlyph(t.width, t.height, mask)
	if err != nil {
		return err
	}
	return t.Add(r, g)
}

// AddRows maps r to a glyph drawn in the ParseGlyph notation. Short rows and
// missing rows are paper.
func (t *GlyphTable) AddRows(r rune, rows ...string) error {
	mask, err := parseGlyphRows(t.width, rows)
	if err != nil {
		return err
	}
	return t.AddMask(r, mask)
}

func (t *GlyphTable) GlyphFor(r rune) *Glyph {
	if g, ok := t.glyphs[r]; ok {
		return g
	}
	return t.fallback
}

func (t *GlyphTable) GlyphSize() (int, int) { return t.width, t.height }

func (t *GlyphTable) Fallback() *Glyph { return t.fallback }

// Len returns the number of mapped runes.
func (t *GlyphTable) Len() int { return len(t.glyphs) }

// Has reports whether r has its own glyph.
func (t *GlyphTable) Has(r rune) bool {
	_, ok := t.glyphs[r]
	return ok
}

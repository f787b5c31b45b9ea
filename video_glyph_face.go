// video_glyph_face.go - Glyph tables rasterized from x/image font faces

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
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// inkThreshold is the coverage at which a rasterized pixel counts as ink.
const inkThreshold = 0x80

// RuneRange is an inclusive range of runes to rasterize.
type RuneRange struct {
	First, Last rune
}

// RangeASCII covers the printable ASCII characters.
var RangeASCII = RuneRange{First: 0x20, Last: 0x7E}

// NewDefaultGlyphTable returns the built-in 7x13 fixed font. basicfont only
// carries ASCII; anything else draws as its replacement box, so nothing
// beyond ASCII is rasterized.
func NewDefaultGlyphTable() (*GlyphTable, error) {
	return NewFaceGlyphTable(basicfont.Face7x13, RangeASCII)
}

// NewFaceGlyphTable rasterizes the runes in ranges from face into a glyph
// table. The cell is the advance of 'M' wide and ascent+descent tall; runes
// the face has no glyph for are left unmapped and fall back to space.
func NewFaceGlyphTable(face font.Face, ranges ...RuneRange) (*GlyphTable, error) {
	if len(ranges) == 0 {
		ranges = []RuneRange{RangeASCII}
	}
	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, &VideoError{
			Operation: "font rasterize",
			Details:   "face has no glyph for 'M' to size cells from",
			Err:       ErrInvalidGeometry,
		}
	}
	width := advance.Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	table, err := NewGlyphTable(width, height)
	if err != nil {
		return nil, fmt.Errorf("font cell %dx%d: %w", width, height, err)
	}

	cell := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: face,
	}
	for _, rr := range ranges {
		for r := rr.First; r <= rr.Last; r++ {
			if _, ok := face.GlyphAdvance(r); !ok {
				continue
			}
			clear(cell.Pix)
			drawer.Dot = fixed.Point26_6{Y: metrics.Ascent}
			drawer.DrawString(string(r))
			if err := table.AddMask(r, alphaToMask(cell)); err != nil {
				return nil, err
			}
		}
	}
	return table, nil
}

func alphaToMask(cell *image.Alpha) []uint32 {
	b := cell.Bounds()
	width := b.Dx()
	mask := make([]uint32, b.Dy())
	for y := range b.Dy() {
		row := cell.Pix[y*cell.Stride : y*cell.Stride+width]
		for x, a := range row {
			if a >= inkThreshold {
				mask[y] |= 1 << (width - 1 - x)
			}
		}
	}
	return mask
}

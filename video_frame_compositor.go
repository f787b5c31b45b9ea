// video_frame_compositor.go - Glyph-to-pixel compositing for the PCD-68 display

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
	"image/color"
)

const BYTES_PER_PIXEL = 4

// Pixel is one RGBA8 frame buffer pixel.
type Pixel [BYTES_PER_PIXEL]byte

var (
	PixelBlack = Pixel{0x00, 0x00, 0x00, 0xFF}
	PixelWhite = Pixel{0xFF, 0xFF, 0xFF, 0xFF}
)

func PixelFromColor(c color.Color) Pixel {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Pixel{rgba.R, rgba.G, rgba.B, rgba.A}
}

func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// FrameGeometry ties the text grid to the frame it is drawn into.
type FrameGeometry struct {
	FrameWidth  int
	FrameHeight int
	GlyphWidth  int
	GlyphHeight int
	Cols        int
	Rows        int
}

func (g FrameGeometry) TextWidth() int  { return g.Cols * g.GlyphWidth }
func (g FrameGeometry) TextHeight() int { return g.Rows * g.GlyphHeight }

// BufferSize is the byte length of a full frame.
func (g FrameGeometry) BufferSize() int {
	return g.FrameWidth * g.FrameHeight * BYTES_PER_PIXEL
}

// Validate rejects geometries that would place glyph pixels outside the
// frame. With exactFit it also rejects grids that leave unused pixels.
func (g FrameGeometry) Validate(exactFit bool) error {
	if g.FrameWidth <= 0 || g.FrameHeight <= 0 || g.GlyphWidth <= 0 || g.GlyphHeight <= 0 || g.Cols <= 0 || g.Rows <= 0 {
		return &VideoError{
			Operation: "geometry check",
			Details:   g.String(),
			Err:       ErrInvalidGeometry,
		}
	}
	if g.TextWidth() > g.FrameWidth || g.TextHeight() > g.FrameHeight {
		return &VideoError{
			Operation: "geometry check",
			Details: fmt.Sprintf("%dx%d text area does not fit %dx%d frame (%s)",
				g.TextWidth(), g.TextHeight(), g.FrameWidth, g.FrameHeight, g),
			Err: ErrGeometryOverflow,
		}
	}
	if exactFit && (g.TextWidth() != g.FrameWidth || g.TextHeight() != g.FrameHeight) {
		return &VideoError{
			Operation: "geometry check",
			Details: fmt.Sprintf("%dx%d text area leaves slack in %dx%d frame",
				g.TextWidth(), g.TextHeight(), g.FrameWidth, g.FrameHeight),
			Err: ErrGeometrySlack,
		}
	}
	return nil
}

func (g FrameGeometry) String() string {
	return fmt.Sprintf("frame %dx%d, glyph %dx%d, grid %dx%d",
		g.FrameWidth, g.FrameHeight, g.GlyphWidth, g.GlyphHeight, g.Cols, g.Rows)
}

// FrameOffset returns the byte offset of frame pixel (x, y).
func (g FrameGeometry) FrameOffset(x, y int) (int, bool) {
	if x < 0 || x >= g.FrameWidth || y < 0 || y >= g.FrameHeight {
		return 0, false
	}
	return (y*g.FrameWidth + x) * BYTES_PER_PIXEL, true
}

// PixelOffset returns the byte offset of pixel (x, y) of the glyph drawn in
// cell (row, col). Pixels outside the cell box or the frame are rejected, so
// an oversized glyph can never bleed into its neighbours.
func (g FrameGeometry) PixelOffset(row, col, x, y int) (int, bool) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, false
	}
	if x < 0 || x >= g.GlyphWidth || y < 0 || y >= g.GlyphHeight {
		return 0, false
	}
	return g.FrameOffset(col*g.GlyphWidth+x, row*g.GlyphHeight+y)
}

// CellRect returns the frame pixel rectangle [x0,x1) x [y0,y1) of a cell.
func (g FrameGeometry) CellRect(row, col int) (x0, y0, x1, y1 int) {
	x0 = col * g.GlyphWidth
	y0 = row * g.GlyphHeight
	return x0, y0, x0 + g.GlyphWidth, y0 + g.GlyphHeight
}

func writePixel(buf []byte, offset int, p Pixel) bool {
	if offset < 0 || offset+BYTES_PER_PIXEL > len(buf) {
		return false
	}
	copy(buf[offset:offset+BYTES_PER_PIXEL], p[:])
	return true
}

// FrameCompositor rasterizes a character grid into a caller-owned RGBA
// buffer. It keeps no state between calls.
type FrameCompositor struct {
	geometry FrameGeometry
}

func NewFrameCompositor(geometry FrameGeometry) (*FrameCompositor, error) {
	if err := geometry.Validate(false); err != nil {
		return nil, err
	}
	return &FrameCompositor{geometry: geometry}, nil
}

func (c *FrameCompositor) Geometry() FrameGeometry { return c.geometry }

// Composite paints every cell of grid: ink pixels in fg, paper pixels in bg.
// A buffer shorter than a full frame is rejected before anything is
// written. Pixels outside the frame are skipped.
func (c *FrameCompositor) Composite(grid *CharacterGrid, glyphs GlyphSource, buf []byte, fg, bg Pixel) error {
	if need := c.geometry.BufferSize(); len(buf) < need {
		return &VideoError{
			Operation: "composite",
			Details:   fmt.Sprintf("buffer holds %d bytes, frame needs %d", len(buf), need),
			Err:       ErrBufferTooSmall,
		}
	}
	rows := min(grid.Rows(), c.geometry.Rows)
	cols := min(grid.Cols(), c.geometry.Cols)
	for row := range rows {
		for col := range cols {
			c.compositeCell(buf, row, col, glyphs.GlyphFor(grid.At(row, col)), fg, bg)
		}
	}
	return nil
}

func (c *FrameCompositor) compositeCell(buf []byte, row, col int, glyph *Glyph, fg, bg Pixel) {
	for px := range glyph.Pixels() {
		offset, ok := c.geometry.PixelOffset(row, col, px.X, px.Y)
		if !ok {
			continue
		}
		if px.Ink {
			writePixel(buf, offset, fg)
		} else {
			writePixel(buf, offset, bg)
		}
	}
	// A glyph smaller than the cell leaves paper on its right and bottom.
	if glyph.Width() < c.geometry.GlyphWidth || glyph.Height() < c.geometry.GlyphHeight {
		for y := range c.geometry.GlyphHeight {
			for x := range c.geometry.GlyphWidth {
				if x < glyph.Width() && y < glyph.Height() {
					continue
				}
				if offset, ok := c.geometry.PixelOffset(row, col, x, y); ok {
					writePixel(buf, offset, bg)
				}
			}
		}
	}
}

// FillSlack paints the frame pixels no cell covers: the strip right of the
// text area and the strip below it.
func (c *FrameCompositor) FillSlack(buf []byte, bg Pixel) error {
	if need := c.geometry.BufferSize(); len(buf) < need {
		return &VideoError{
			Operation: "fill slack",
			Details:   fmt.Sprintf("buffer holds %d bytes, frame needs %d", len(buf), need),
			Err:       ErrBufferTooSmall,
		}
	}
	g := c.geometry
	for y := range g.FrameHeight {
		startX := g.TextWidth()
		if y >= g.TextHeight() {
			startX = 0
		}
		for x := startX; x < g.FrameWidth; x++ {
			if offset, ok := g.FrameOffset(x, y); ok {
				writePixel(buf, offset, bg)
			}
		}
	}
	return nil
}

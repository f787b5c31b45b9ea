// video_glyph_bdf.go - Glyph tables loaded from BDF bitmap fonts

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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// bdfGlyph is one STARTCHAR block as read from the file.
type bdfGlyph struct {
	encoding   rune
	bbw, bbh   int
	bbx, bby   int
	rows       []uint64
	rowBits    int
	inBitmap   bool
	haveBBX    bool
	skipUnused bool
}

// ParseBDF reads a fixed-cell BDF font. The cell is the font bounding box
// wide and FONT_ASCENT+FONT_DESCENT tall (the bounding box height when the
// properties are missing); each glyph sits on the shared baseline and is
// clipped to the cell.
func ParseBDF(r io.Reader) (*GlyphTable, error) {
	var (
		fbbW, fbbH, fbbX, fbbY int
		haveFBB                bool
		glyphs                 []*bdfGlyph
		cur                    *bdfGlyph
	)
	ascent, descent := -1, -1
	fail := func(line int, format string, args ...any) error {
		return &VideoError{
			Operation: "bdf parse",
			Details:   fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)),
			Err:       ErrInvalidFont,
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cur != nil && cur.inBitmap && fields[0] != "ENDCHAR" {
			v, err := strconv.ParseUint(fields[0], 16, 64)
			if err != nil || len(fields[0])*4 > 64 {
				return nil, fail(lineNo, "bad bitmap row %q", fields[0])
			}
			cur.rows = append(cur.rows, v)
			cur.rowBits = len(fields[0]) * 4
			continue
		}
		ints, err := atoiFields(fields[1:])
		switch fields[0] {
		case "FONTBOUNDINGBOX":
			if err != nil || len(ints) != 4 {
				return nil, fail(lineNo, "bad FONTBOUNDINGBOX")
			}
			fbbW, fbbH, fbbX, fbbY = ints[0], ints[1], ints[2], ints[3]
			haveFBB = true
		case "FONT_ASCENT":
			if err != nil || len(ints) != 1 {
				return nil, fail(lineNo, "bad FONT_ASCENT")
			}
			ascent = ints[0]
		case "FONT_DESCENT":
			if err != nil || len(ints) != 1 {
				return nil, fail(lineNo, "bad FONT_DESCENT")
			}
			descent = ints[0]
		case "STARTCHAR":
			cur = &bdfGlyph{encoding: -1}
		case "ENCODING":
			if cur == nil || err != nil || len(ints) == 0 {
				return nil, fail(lineNo, "bad ENCODING")
			}
			// -1 marks a glyph with no standard code point; the optional
			// second number is a private encoding we have no use for.
			cur.skipUnused = ints[0] < 0
			cur.encoding = rune(ints[0])
		case "BBX":
			if cur == nil || err != nil || len(ints) != 4 {
				return nil, fail(lineNo, "bad BBX")
			}
			cur.bbw, cur.bbh, cur.bbx, cur.bby = ints[0], ints[1], ints[2], ints[3]
			cur.haveBBX = true
		case "BITMAP":
			if cur == nil {
				return nil, fail(lineNo, "BITMAP outside STARTCHAR")
			}
			cur.inBitmap = true
		case "ENDCHAR":
			if cur == nil {
				return nil, fail(lineNo, "ENDCHAR without STARTCHAR")
			}
			if !cur.skipUnused {
				glyphs = append(glyphs, cur)
			}
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read bdf: %w", err)
	}
	if !haveFBB {
		return nil, fail(lineNo, "missing FONTBOUNDINGBOX")
	}
	if ascent < 0 || descent < 0 {
		ascent, descent = fbbH+fbbY, -fbbY
	}

	table, err := NewGlyphTable(fbbW, ascent+descent)
	if err != nil {
		return nil, err
	}
	for _, g := range glyphs {
		if err := table.AddMask(g.encoding, g.cellMask(fbbW, ascent+descent, fbbX, ascent)); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// cellMask places the glyph bitmap in a width x height cell whose baseline
// is ascent rows from the top.
func (g *bdfGlyph) cellMask(width, height, originX, ascent int) []uint32 {
	bbw, bbh, bbx, bby := g.bbw, g.bbh, g.bbx, g.bby
	if !g.haveBBX {
		bbw, bbh, bbx, bby = width, len(g.rows), originX, ascent-len(g.rows)
	}
	mask := make([]uint32, height)
	top := ascent - (bby + bbh)
	for i, row := range g.rows {
		y := top + i
		if y < 0 || y >= height || i >= bbh {
			continue
		}
		for x := range bbw {
			if x >= g.rowBits || row&(1<<(g.rowBits-1-x)) == 0 {
				continue
			}
			cx := bbx - originX + x
			if cx < 0 || cx >= width {
				continue
			}
			mask[y] |= 1 << (width - 1 - cx)
		}
	}
	return mask
}

func atoiFields(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// LoadBDFFile reads a BDF font from disk.
func LoadBDFFile(path string) (*GlyphTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	defer f.Close()
	table, err := ParseBDF(f)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return table, nil
}

func init() {
	compiledFeatures = append(compiledFeatures, "font:bdf")
}

// video_text_layout.go - Text layout into the character grid

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

import "fmt"

// LayoutPolicy decides what happens to text that needs more rows than the
// grid has.
type LayoutPolicy int

const (
	// LayoutTruncate stops consuming input at the first character that has
	// no cell left.
	LayoutTruncate LayoutPolicy = iota
	// LayoutClampLastRow keeps writing into the last row, overwriting it
	// each time the text wraps or breaks past the bottom.
	LayoutClampLastRow
)

func (p LayoutPolicy) String() string {
	switch p {
	case LayoutTruncate:
		return "truncate"
	case LayoutClampLastRow:
		return "clamp"
	default:
		return fmt.Sprintf("LayoutPolicy(%d)", int(p))
	}
}

func ParseLayoutPolicy(s string) (LayoutPolicy, error) {
	switch s {
	case "", "truncate":
		return LayoutTruncate, nil
	case "clamp":
		return LayoutClampLastRow, nil
	}
	return LayoutTruncate, fmt.Errorf("unknown layout policy %q (want truncate or clamp)", s)
}

// LayoutResult describes one layout run.
type LayoutResult struct {
	Written    int  // characters stored into cells
	Consumed   int  // input runes processed, newlines included
	Overflowed bool // the text needed rows past the bottom of the grid
	Row, Col   int  // cursor after the last consumed rune
}

type textLayout struct {
	grid   *CharacterGrid
	policy LayoutPolicy
	row    int
	col    int
	result LayoutResult
}

// feed places one rune and reports whether more input can be taken.
func (l *textLayout) feed(r rune) bool {
	if r == '\n' {
		l.col = 0
		l.row++
		l.result.Consumed++
		return true
	}
	if l.col >= l.grid.cols {
		l.col = 0
		l.row++
	}
	if l.row >= l.grid.rows {
		l.result.Overflowed = true
		if l.policy != LayoutClampLastRow {
			return false
		}
		l.row = l.grid.rows - 1
	}
	l.grid.Set(l.row, l.col, r)
	l.col++
	l.result.Written++
	l.result.Consumed++
	return true
}

func (l *textLayout) finish() LayoutResult {
	l.result.Row = l.row
	l.result.Col = l.col
	return l.result
}

// LayoutText writes text into grid from the top-left corner. A newline moves
// to the start of the next row without taking a cell; a character that
// would land past the last column wraps to the next row first. Cells the
// text does not reach keep their contents.
func LayoutText(text string, grid *CharacterGrid, policy LayoutPolicy) LayoutResult {
	l := &textLayout{grid: grid, policy: policy}
	for _, r := range text {
		if !l.feed(r) {
			break
		}
	}
	return l.finish()
}

// LayoutRunes is LayoutText for code-point input.
func LayoutRunes(text []rune, grid *CharacterGrid, policy LayoutPolicy) LayoutResult {
	l := &textLayout{grid: grid, policy: policy}
	for _, r := range text {
		if !l.feed(r) {
			break
		}
	}
	return l.finish()
}

// video_text_grid.go - Fixed-size character grid behind the text display

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

import "strings"

// blankCell is the content of every cell that has not been written.
const blankCell = ' '

// CharacterGrid is a rows x cols arena of runes stored row-major. It never
// resizes; out-of-range reads return a blank and out-of-range writes are
// rejected.
type CharacterGrid struct {
	rows, cols int
	cells      []rune
}

func NewCharacterGrid(rows, cols int) *CharacterGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	g := &CharacterGrid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}
	g.Clear()
	return g
}

func (g *CharacterGrid) Rows() int { return g.rows }
func (g *CharacterGrid) Cols() int { return g.cols }

func (g *CharacterGrid) index(row, col int) (int, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return row*g.cols + col, true
}

func (g *CharacterGrid) At(row, col int) rune {
	i, ok := g.index(row, col)
	if !ok {
		return blankCell
	}
	return g.cells[i]
}

// Set stores r at (row, col) and reports whether the cell exists.
func (g *CharacterGrid) Set(row, col int, r rune) bool {
	i, ok := g.index(row, col)
	if !ok {
		return false
	}
	g.cells[i] = r
	return true
}

func (g *CharacterGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = blankCell
	}
}

// Row returns the full row, trailing blanks included.
func (g *CharacterGrid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// ReadLine returns the row with trailing blanks trimmed.
func (g *CharacterGrid) ReadLine(row int) string {
	return strings.TrimRight(g.Row(row), " ")
}

// UsedRows returns one past the last row holding a non-blank cell.
func (g *CharacterGrid) UsedRows() int {
	for row := g.rows - 1; row >= 0; row-- {
		for _, r := range g.cells[row*g.cols : (row+1)*g.cols] {
			if r != blankCell {
				return row + 1
			}
		}
	}
	return 0
}

// Lines returns every row with trailing blanks trimmed.
func (g *CharacterGrid) Lines() []string {
	lines := make([]string, g.rows)
	for row := range g.rows {
		lines[row] = g.ReadLine(row)
	}
	return lines
}

package main

import (
	"strings"
	"testing"
)

func TestLayoutText_FirstRow(t *testing.T) {
	g := NewCharacterGrid(23, 80)
	res := LayoutText("Hello", g, LayoutTruncate)
	for i, r := range "Hello" {
		if got := g.At(0, i); got != r {
			t.Fatalf("expected %q at (0,%d), got %q", r, i, got)
		}
	}
	if g.At(0, 5) != ' ' || g.UsedRows() != 1 {
		t.Fatal("expected the rest of the grid to stay blank")
	}
	if res.Written != 5 || res.Consumed != 5 || res.Overflowed {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLayoutText_NewlineStartsNextRow(t *testing.T) {
	g := NewCharacterGrid(23, 80)
	res := LayoutText("ab\ncd", g, LayoutTruncate)
	want := map[[2]int]rune{{0, 0}: 'a', {0, 1}: 'b', {1, 0}: 'c', {1, 1}: 'd', {0, 2}: ' ', {1, 2}: ' '}
	for pos, r := range want {
		if got := g.At(pos[0], pos[1]); got != r {
			t.Fatalf("expected %q at (%d,%d), got %q", r, pos[0], pos[1], got)
		}
	}
	if res.Written != 4 || res.Consumed != 5 {
		t.Fatalf("expected 4 written and 5 consumed, got %+v", res)
	}
	if res.Row != 1 || res.Col != 2 {
		t.Fatalf("expected cursor at (1,2), got (%d,%d)", res.Row, res.Col)
	}
}

func TestLayoutText_WrapsAtLastColumn(t *testing.T) {
	g := NewCharacterGrid(23, 80)
	LayoutText(strings.Repeat("a", 85), g, LayoutTruncate)
	if got := g.ReadLine(0); got != strings.Repeat("a", 80) {
		t.Fatalf("expected a full first row, got %q", got)
	}
	if got := g.Row(1); got != strings.Repeat("a", 5)+strings.Repeat(" ", 75) {
		t.Fatalf("expected five characters on row 1, got %q", got)
	}
	if g.UsedRows() != 2 {
		t.Fatalf("expected 2 used rows, got %d", g.UsedRows())
	}
}

func TestLayoutText_NewlineAfterFullRow(t *testing.T) {
	g := NewCharacterGrid(3, 3)
	LayoutText("abc\nd", g, LayoutTruncate)
	if got := g.Lines(); got[0] != "abc" || got[1] != "d" || got[2] != "" {
		t.Fatalf("expected no blank row between a full row and a newline, got %q", got)
	}
}

func TestLayoutText_TruncateStopsAtBottom(t *testing.T) {
	g := NewCharacterGrid(2, 3)
	res := LayoutText("abcdefgh", g, LayoutTruncate)
	if got := g.Lines(); got[0] != "abc" || got[1] != "def" {
		t.Fatalf("expected abc/def, got %q", got)
	}
	if !res.Overflowed || res.Written != 6 || res.Consumed != 6 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLayoutText_TruncateNewlinesPastBottom(t *testing.T) {
	g := NewCharacterGrid(2, 3)
	res := LayoutText("a\nb\nc", g, LayoutTruncate)
	if got := g.Lines(); got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected a/b, got %q", got)
	}
	if !res.Overflowed || res.Written != 2 || res.Consumed != 4 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestLayoutText_TrailingNewlinesDoNotOverflow(t *testing.T) {
	g := NewCharacterGrid(1, 3)
	res := LayoutText("abc\n\n\n", g, LayoutTruncate)
	if res.Overflowed {
		t.Fatal("expected newlines alone not to overflow")
	}
	if res.Consumed != 6 {
		t.Fatalf("expected every rune consumed, got %d", res.Consumed)
	}
}

func TestLayoutText_ClampOverwritesLastRow(t *testing.T) {
	g := NewCharacterGrid(2, 3)
	res := LayoutText("abcdefgh", g, LayoutClampLastRow)
	if got := g.Lines(); got[0] != "abc" || got[1] != "ghf" {
		t.Fatalf("expected abc/ghf, got %q", got)
	}
	if !res.Overflowed || res.Written != 8 || res.Consumed != 8 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Row != 1 {
		t.Fatalf("expected cursor on the last row, got %d", res.Row)
	}
}

func TestLayoutText_ClampNewline(t *testing.T) {
	g := NewCharacterGrid(2, 4)
	LayoutText("one\ntwo\nsix", g, LayoutClampLastRow)
	if got := g.Lines(); got[0] != "one" || got[1] != "six" {
		t.Fatalf("expected one/six, got %q", got)
	}
}

func TestLayoutText_KeepsUnreachedCells(t *testing.T) {
	g := NewCharacterGrid(2, 4)
	for row := range 2 {
		for col := range 4 {
			g.Set(row, col, 'z')
		}
	}
	LayoutText("ab", g, LayoutTruncate)
	if got := g.Row(0); got != "abzz" {
		t.Fatalf("expected abzz, got %q", got)
	}
	if got := g.Row(1); got != "zzzz" {
		t.Fatalf("expected row 1 untouched, got %q", got)
	}
}

func TestLayoutText_Empty(t *testing.T) {
	g := NewCharacterGrid(2, 2)
	res := LayoutText("", g, LayoutTruncate)
	if res != (LayoutResult{}) {
		t.Fatalf("expected zero result, got %+v", res)
	}
	if g.UsedRows() != 0 {
		t.Fatal("expected grid to stay blank")
	}
}

func TestLayoutText_WrittenNeverExceedsGrid(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 1000),
		strings.Repeat("ab\n", 200),
		strings.Repeat("\n", 50) + "tail",
		strings.Repeat("long line without breaks ", 40),
	}
	for _, rows := range []int{1, 2, 23} {
		for _, cols := range []int{1, 7, 80} {
			for _, text := range inputs {
				g := NewCharacterGrid(rows, cols)
				res := LayoutText(text, g, LayoutTruncate)
				if res.Written > rows*cols {
					t.Fatalf("%dx%d: wrote %d characters into %d cells", rows, cols, res.Written, rows*cols)
				}
				if res.Consumed > len([]rune(text)) {
					t.Fatalf("%dx%d: consumed %d of %d runes", rows, cols, res.Consumed, len([]rune(text)))
				}
				if len(g.Lines()) != rows {
					t.Fatalf("%dx%d: grid changed size", rows, cols)
				}
			}
		}
	}
}

func TestLayoutRunes_MatchesLayoutText(t *testing.T) {
	text := "héllo\nwörld " + strings.Repeat("z", 30)
	a, b := NewCharacterGrid(3, 10), NewCharacterGrid(3, 10)
	ra := LayoutText(text, a, LayoutClampLastRow)
	rb := LayoutRunes([]rune(text), b, LayoutClampLastRow)
	if ra != rb {
		t.Fatalf("results differ: %+v vs %+v", ra, rb)
	}
	for row := range 3 {
		if a.Row(row) != b.Row(row) {
			t.Fatalf("row %d differs: %q vs %q", row, a.Row(row), b.Row(row))
		}
	}
}

func TestParseLayoutPolicy(t *testing.T) {
	for in, want := range map[string]LayoutPolicy{"": LayoutTruncate, "truncate": LayoutTruncate, "clamp": LayoutClampLastRow} {
		got, err := ParseLayoutPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseLayoutPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLayoutPolicy("wrap"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if LayoutClampLastRow.String() != "clamp" {
		t.Fatalf("expected clamp, got %s", LayoutClampLastRow)
	}
}

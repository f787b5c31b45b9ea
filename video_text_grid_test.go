package main

import "testing"

func TestCharacterGrid_StartsBlank(t *testing.T) {
	g := NewCharacterGrid(23, 80)
	if g.Rows() != 23 || g.Cols() != 80 {
		t.Fatalf("expected 23x80 grid, got %dx%d", g.Rows(), g.Cols())
	}
	for row := range g.Rows() {
		for col := range g.Cols() {
			if r := g.At(row, col); r != ' ' {
				t.Fatalf("expected blank at (%d,%d), got %q", row, col, r)
			}
		}
	}
	if g.UsedRows() != 0 {
		t.Fatalf("expected no used rows, got %d", g.UsedRows())
	}
}

func TestCharacterGrid_ClampsSize(t *testing.T) {
	g := NewCharacterGrid(0, -4)
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Rows(), g.Cols())
	}
}

func TestCharacterGrid_SetAndAt(t *testing.T) {
	g := NewCharacterGrid(2, 3)
	if !g.Set(1, 2, 'z') {
		t.Fatal("expected in-range Set to succeed")
	}
	if r := g.At(1, 2); r != 'z' {
		t.Fatalf("expected 'z', got %q", r)
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if g.Set(pos[0], pos[1], 'x') {
			t.Fatalf("expected Set(%d,%d) to be rejected", pos[0], pos[1])
		}
		if r := g.At(pos[0], pos[1]); r != ' ' {
			t.Fatalf("expected blank outside the grid, got %q", r)
		}
	}
}

func TestCharacterGrid_Lines(t *testing.T) {
	g := NewCharacterGrid(3, 4)
	g.Set(0, 0, 'a')
	g.Set(0, 2, 'b')
	g.Set(1, 3, 'c')
	if got := g.Row(0); got != "a b " {
		t.Fatalf("expected %q, got %q", "a b ", got)
	}
	lines := g.Lines()
	want := []string{"a b", "   c", ""}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	if g.UsedRows() != 2 {
		t.Fatalf("expected 2 used rows, got %d", g.UsedRows())
	}
	if g.Row(3) != "" || g.ReadLine(-1) != "" {
		t.Fatal("expected empty string for rows outside the grid")
	}
}

func TestCharacterGrid_Clear(t *testing.T) {
	g := NewCharacterGrid(2, 2)
	g.Set(0, 0, 'a')
	g.Set(1, 1, 'b')
	g.Clear()
	if g.UsedRows() != 0 {
		t.Fatalf("expected cleared grid, %d rows used", g.UsedRows())
	}
}

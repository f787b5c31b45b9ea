package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type stripeRenderer struct {
	width, height int
	err           error
}

func (r stripeRenderer) Render(buf []byte) error {
	if r.err != nil {
		return r.err
	}
	for y := range r.height {
		p := Pixel{0xFF, 0x00, 0x00, 0xFF}
		if y >= r.height/2 {
			p = Pixel{0x00, 0x00, 0xFF, 0xFF}
		}
		for x := range r.width {
			copy(buf[(y*r.width+x)*BYTES_PER_PIXEL:], p[:])
		}
	}
	return nil
}

func newSimulatedTerminal(t *testing.T) (*TerminalOutput, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	out := NewTerminalOutputWithScreen(screen)
	if err := out.SetDisplayConfig(DisplayConfig{Width: 4, Height: 4, RefreshRate: 200}); err != nil {
		t.Fatalf("SetDisplayConfig failed: %v", err)
	}
	out.SetRenderer(stripeRenderer{width: 4, height: 4})
	return out, screen
}

func waitDone(t *testing.T, out VideoOutput) {
	t.Helper()
	select {
	case <-out.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the surface to close")
	}
}

func TestTerminalOutput_DrawFrame(t *testing.T) {
	out, screen := newSimulatedTerminal(t)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	if err := out.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}
	red := tcell.NewRGBColor(0xFF, 0, 0)
	blue := tcell.NewRGBColor(0, 0, 0xFF)

	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if mainc != upperHalfBlock || fg != red || bg != red {
		t.Fatalf("expected red half block at (0,0), got %q fg=%v bg=%v", mainc, fg, bg)
	}
	mainc, _, style, _ = screen.GetContent(3, 1)
	fg, bg, _ = style.Decompose()
	if mainc != upperHalfBlock || fg != blue || bg != blue {
		t.Fatalf("expected blue half block at (3,1), got %q fg=%v bg=%v", mainc, fg, bg)
	}
	// The frame is never stretched past its own size.
	if mainc, _, _, _ := screen.GetContent(4, 0); mainc == upperHalfBlock {
		t.Fatal("expected nothing drawn right of the frame")
	}
	if out.GetFrameCount() != 1 {
		t.Fatalf("expected 1 frame, got %d", out.GetFrameCount())
	}

	snap, err := out.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if snap.Width != 4 || snap.Height != 4 || pixelAt(snap.Buffer, 4, 0, 3) != (Pixel{0, 0, 0xFF, 0xFF}) {
		t.Fatalf("unexpected snapshot %dx%d", snap.Width, snap.Height)
	}
}

func TestTerminalOutput_RenderError(t *testing.T) {
	out, screen := newSimulatedTerminal(t)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	boom := errors.New("boom")
	out.SetRenderer(stripeRenderer{err: boom})
	if err := out.DrawFrame(); !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if out.GetFrameCount() != 1 {
		t.Fatal("expected a failed frame to still count")
	}
}

func TestTerminalOutput_FrameLimit(t *testing.T) {
	out, _ := newSimulatedTerminal(t)
	cfg := out.GetDisplayConfig()
	cfg.FrameLimit = 3
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig failed: %v", err)
	}
	if err := out.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	waitDone(t, out)
	if out.GetFrameCount() != 3 {
		t.Fatalf("expected 3 frames, got %d", out.GetFrameCount())
	}
	if out.IsStarted() {
		t.Fatal("expected surface to report stopped")
	}
}

func TestTerminalOutput_EscapeQuits(t *testing.T) {
	out, screen := newSimulatedTerminal(t)
	if err := out.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	waitDone(t, out)
}

func TestTerminalOutput_BracketedPaste(t *testing.T) {
	out, screen := newSimulatedTerminal(t)
	pasted := make(chan string, 1)
	out.SetPasteHandler(func(text string) { pasted <- text })
	if err := out.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		out.Close()
		waitDone(t, out)
	}()

	for _, ev := range []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventPaste(false),
	} {
		if err := screen.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent failed: %v", err)
		}
	}
	select {
	case text := <-pasted:
		if text != "hq\n" {
			t.Fatalf("expected %q, got %q", "hq\n", text)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for paste")
	}
	if !out.IsStarted() {
		t.Fatal("expected q inside a paste not to quit")
	}
}

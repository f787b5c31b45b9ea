//go:build headless

package main

import (
	"errors"
	"testing"
	"time"
)

func TestHeadlessOutput_SetDisplayConfig_StoresFullscreen(t *testing.T) {
	out := &HeadlessVideoOutput{}
	cfg := DisplayConfig{
		Width:      640,
		Height:     480,
		Scale:      2,
		Fullscreen: true,
	}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if got.Scale != 2 || !got.Fullscreen {
		t.Fatalf("expected Scale=2, Fullscreen=true; got Scale=%d, Fullscreen=%v", got.Scale, got.Fullscreen)
	}
	snap, err := out.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot returned error: %v", err)
	}
	if len(snap.Buffer) != 640*480*BYTES_PER_PIXEL {
		t.Fatalf("expected buffer resized to 640x480, got %d bytes", len(snap.Buffer))
	}
}

func newHeadlessForTest(t *testing.T, limit uint64) *HeadlessVideoOutput {
	t.Helper()
	out, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		t.Fatalf("NewVideoOutput failed: %v", err)
	}
	h, ok := out.(*HeadlessVideoOutput)
	if !ok {
		t.Fatalf("expected headless surface, got %T", out)
	}
	if err := h.SetDisplayConfig(DisplayConfig{Width: 400, Height: 300, RefreshRate: 500, FrameLimit: limit}); err != nil {
		t.Fatalf("SetDisplayConfig failed: %v", err)
	}
	return h
}

func TestHeadlessOutput_RendersUntilFrameLimit(t *testing.T) {
	h := newHeadlessForTest(t, 5)
	rp := newTestRenderPass(t, DefaultRenderConfig())
	rp.LoadText("ab")
	h.SetRenderer(rp)
	if err := h.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for frame limit")
	}
	if h.GetFrameCount() != 5 || rp.Stats().Frames != 5 {
		t.Fatalf("expected 5 frames, got %d surface / %d rendered", h.GetFrameCount(), rp.Stats().Frames)
	}
	snap, err := h.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if got := pixelAt(snap.Buffer, 400, 0, 0); got != PixelBlack {
		t.Fatalf("expected ink at (0,0), got %v", got)
	}
}

func TestHeadlessOutput_FailedFramesCount(t *testing.T) {
	h := newHeadlessForTest(t, 3)
	boom := errors.New("boom")
	h.SetRenderer(stripeRenderer{err: boom})
	if err := h.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("expected failing renderer to still reach the frame limit")
	}
	if !errors.Is(h.LastError(), boom) {
		t.Fatalf("expected last error to be recorded, got %v", h.LastError())
	}
}

func TestHeadlessOutput_StopEndsRun(t *testing.T) {
	h := newHeadlessForTest(t, 0)
	if err := h.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.Stop()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stop")
	}
	if h.IsStarted() {
		t.Fatal("expected surface to report stopped")
	}
}

func TestHeadlessOutput_PasteNormalizes(t *testing.T) {
	h := newHeadlessForTest(t, 0)
	rp := newTestRenderPass(t, DefaultRenderConfig())
	h.SetPasteHandler(func(text string) { rp.AppendText(text) })
	h.Paste("ab\r\ncd")
	if lines := rp.Lines(); lines[0] != "ab" || lines[1] != "cd" {
		t.Fatalf("expected ab/cd, got %q", lines[:2])
	}
}

//go:build !headless

package main

import "testing"

func TestEbitenOutput_ImplementsVideoOutput(t *testing.T) {
	out, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		t.Fatalf("NewVideoOutput failed: %v", err)
	}
	if _, ok := out.(*EbitenOutput); !ok {
		t.Fatalf("expected EbitenOutput, got %T", out)
	}
}

func TestEbitenOutput_SetDisplayConfig(t *testing.T) {
	out, err := NewEbitenOutput()
	if err != nil {
		t.Fatalf("NewEbitenOutput failed: %v", err)
	}
	cfg := DisplayConfig{Width: 320, Height: 200, Scale: 12, RefreshRate: 50, Title: "test", FrameLimit: 9}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if got.Width != 320 || got.Height != 200 || got.Scale != MAX_SCALE || got.RefreshRate != 50 || got.FrameLimit != 9 {
		t.Fatalf("unexpected display config %+v", got)
	}
	snap, err := out.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot returned error: %v", err)
	}
	if len(snap.Buffer) != 320*200*BYTES_PER_PIXEL {
		t.Fatalf("expected buffer resized to 320x200, got %d bytes", len(snap.Buffer))
	}
	if out.IsStarted() {
		t.Fatal("expected surface not to start on its own")
	}
}

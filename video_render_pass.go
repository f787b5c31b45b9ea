// video_render_pass.go - Text screen render pass for the PCD-68 display

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
	"sync"
)

const (
	DEFAULT_FRAME_WIDTH  = 400
	DEFAULT_FRAME_HEIGHT = 300
)

// RenderConfig describes the text screen. Zero Cols or Rows fill the frame
// with as many cells as fit.
type RenderConfig struct {
	FrameWidth  int
	FrameHeight int
	Cols        int
	Rows        int
	Foreground  Pixel
	Background  Pixel
	Policy      LayoutPolicy
	ExactFit    bool
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		FrameWidth:  DEFAULT_FRAME_WIDTH,
		FrameHeight: DEFAULT_FRAME_HEIGHT,
		Foreground:  PixelBlack,
		Background:  PixelWhite,
		Policy:      LayoutTruncate,
	}
}

// RenderStats is what the status bar shows about the screen.
type RenderStats struct {
	Frames   uint64
	Layout   LayoutResult
	UsedRows int
	Geometry FrameGeometry
	Splash   bool
}

// RenderPass owns the character grid and turns it into frames. Text loads
// and renders are serialized, so a load never lands in the middle of a
// frame.
type RenderPass struct {
	mu         sync.Mutex
	config     RenderConfig
	grid       *CharacterGrid
	glyphs     GlyphSource
	compositor *FrameCompositor
	text       string
	layout     LayoutResult
	frames     uint64
	splash     *Splash
	showSplash bool
}

func NewRenderPass(cfg RenderConfig, glyphs GlyphSource) (*RenderPass, error) {
	gw, gh := glyphs.GlyphSize()
	if gw <= 0 || gh <= 0 {
		return nil, &VideoError{
			Operation: "render pass",
			Details:   fmt.Sprintf("glyph size %dx%d", gw, gh),
			Err:       ErrInvalidGeometry,
		}
	}
	geometry := FrameGeometry{
		FrameWidth:  cfg.FrameWidth,
		FrameHeight: cfg.FrameHeight,
		GlyphWidth:  gw,
		GlyphHeight: gh,
		Cols:        cfg.Cols,
		Rows:        cfg.Rows,
	}
	if geometry.Cols == 0 {
		geometry.Cols = cfg.FrameWidth / gw
	}
	if geometry.Rows == 0 {
		geometry.Rows = cfg.FrameHeight / gh
	}
	if err := geometry.Validate(cfg.ExactFit); err != nil {
		return nil, err
	}
	compositor, err := NewFrameCompositor(geometry)
	if err != nil {
		return nil, err
	}
	cfg.Cols = geometry.Cols
	cfg.Rows = geometry.Rows
	return &RenderPass{
		config:     cfg,
		grid:       NewCharacterGrid(geometry.Rows, geometry.Cols),
		glyphs:     glyphs,
		compositor: compositor,
	}, nil
}

func (rp *RenderPass) Geometry() FrameGeometry { return rp.compositor.Geometry() }

func (rp *RenderPass) Config() RenderConfig { return rp.config }

// LoadText blanks the grid and lays text out from the top-left corner.
func (rp *RenderPass) LoadText(text string) LayoutResult {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.loadTextLocked(text)
}

// AppendText adds text after what is already loaded and lays the whole
// screen out again.
func (rp *RenderPass) AppendText(text string) LayoutResult {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.loadTextLocked(rp.text + text)
}

func (rp *RenderPass) loadTextLocked(text string) LayoutResult {
	rp.text = text
	rp.grid.Clear()
	rp.layout = LayoutText(text, rp.grid, rp.config.Policy)
	return rp.layout
}

func (rp *RenderPass) Text() string {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.text
}

// Lines returns the grid rows with trailing blanks trimmed.
func (rp *RenderPass) Lines() []string {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.grid.Lines()
}

// Render draws one frame into buf: the splash if it is showing, otherwise
// every cell of the grid plus the background in any slack around it.
func (rp *RenderPass) Render(buf []byte) error {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.showSplash && rp.splash != nil {
		if err := rp.splash.Paint(buf); err != nil {
			return err
		}
		rp.frames++
		return nil
	}
	if err := rp.compositor.Composite(rp.grid, rp.glyphs, buf, rp.config.Foreground, rp.config.Background); err != nil {
		return err
	}
	if err := rp.compositor.FillSlack(buf, rp.config.Background); err != nil {
		return err
	}
	rp.frames++
	return nil
}

// SetSplash scales src to the frame. The splash starts hidden.
func (rp *RenderPass) SetSplash(src ImageSource) error {
	splash, err := NewSplash(src, rp.Geometry())
	if err != nil {
		return err
	}
	rp.mu.Lock()
	rp.splash = splash
	rp.mu.Unlock()
	return nil
}

// ShowSplash selects between the splash and the text screen. It reports
// whether the splash is now showing.
func (rp *RenderPass) ShowSplash(show bool) bool {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.showSplash = show && rp.splash != nil
	return rp.showSplash
}

func (rp *RenderPass) ToggleSplash() bool {
	rp.mu.Lock()
	show := !rp.showSplash
	rp.mu.Unlock()
	return rp.ShowSplash(show)
}

func (rp *RenderPass) Stats() RenderStats {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return RenderStats{
		Frames:   rp.frames,
		Layout:   rp.layout,
		UsedRows: rp.grid.UsedRows(),
		Geometry: rp.compositor.Geometry(),
		Splash:   rp.showSplash,
	}
}

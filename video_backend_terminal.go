// video_backend_terminal.go - tcell terminal surface for PCD-68

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
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

func init() {
	compiledFeatures = append(compiledFeatures, "surface:terminal")
}

// upperHalfBlock carries two frame pixels per terminal cell: the top one as
// foreground and the bottom one as background.
const upperHalfBlock = '▀'

// TerminalOutput presents frames in a terminal, downsampled to the screen
// size. Escape, q or Ctrl+C closes it.
type TerminalOutput struct {
	mu           sync.Mutex
	screen       tcell.Screen
	started      atomic.Bool
	config       DisplayConfig
	frameBuffer  []byte
	frameCount   atomic.Uint64
	renderer     FrameRenderer
	pasteHandler func(string)
	stop         chan struct{}
	done         chan struct{}
	stopOnce     sync.Once
}

func NewTerminalOutput() (VideoOutput, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &VideoError{Operation: "backend creation", Details: "terminal screen", Err: err}
	}
	return NewTerminalOutputWithScreen(screen), nil
}

// NewTerminalOutputWithScreen wraps an existing screen, such as a tcell
// simulation screen.
func NewTerminalOutputWithScreen(screen tcell.Screen) *TerminalOutput {
	return &TerminalOutput{
		screen: screen,
		config: DisplayConfig{
			Width:       DEFAULT_FRAME_WIDTH,
			Height:      DEFAULT_FRAME_HEIGHT,
			Scale:       1,
			RefreshRate: DEFAULT_REFRESH_RATE,
		},
		frameBuffer: make([]byte, DEFAULT_FRAME_WIDTH*DEFAULT_FRAME_HEIGHT*BYTES_PER_PIXEL),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (t *TerminalOutput) Start() error {
	if t.started.Swap(true) {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		t.started.Store(false)
		return &VideoError{Operation: "start", Details: "terminal init", Err: err}
	}
	t.screen.HideCursor()
	t.screen.EnablePaste()

	go t.eventLoop()
	go t.refreshLoop()
	return nil
}

func (t *TerminalOutput) refreshLoop() {
	defer func() {
		t.screen.Fini()
		close(t.done)
	}()
	ticker := time.NewTicker(time.Second / time.Duration(t.GetRefreshRate()))
	defer ticker.Stop()
	for {
		if err := t.DrawFrame(); err != nil {
			fmt.Printf("Display: terminal frame failed: %v\n", err)
		}
		if limit := t.GetDisplayConfig().FrameLimit; limit > 0 && t.frameCount.Load() >= limit {
			t.started.Store(false)
			return
		}
		select {
		case <-t.stop:
			return
		case <-ticker.C:
		}
	}
}

func (t *TerminalOutput) eventLoop() {
	var paste []rune
	pasting := false
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if pasting {
				switch ev.Key() {
				case tcell.KeyEnter:
					paste = append(paste, '\n')
				case tcell.KeyRune:
					paste = append(paste, ev.Rune())
				}
				continue
			}
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				t.Stop()
				return
			}
		case *tcell.EventPaste:
			if ev.Start() {
				pasting = true
				paste = paste[:0]
				continue
			}
			pasting = false
			t.mu.Lock()
			handler := t.pasteHandler
			t.mu.Unlock()
			if handler != nil && len(paste) > 0 {
				handler(string(paste))
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// DrawFrame renders one frame and pushes it to the terminal.
func (t *TerminalOutput) DrawFrame() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.frameCount.Add(1)

	if t.renderer != nil {
		if err := t.renderer.Render(t.frameBuffer); err != nil {
			return err
		}
	}
	cols, rows := t.screen.Size()
	drawHalfBlocks(t.frameBuffer, t.config.Width, t.config.Height, cols, rows, func(x, y int, top, bottom Pixel) {
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
			Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
		t.screen.SetContent(x, y, upperHalfBlock, nil, style)
	})
	t.screen.Show()
	return nil
}

// drawHalfBlocks samples a frame onto a cols x rows cell area, two pixel
// rows per cell, never upscaling.
func drawHalfBlocks(buf []byte, width, height, cols, rows int, set func(x, y int, top, bottom Pixel)) {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return
	}
	cols = min(cols, width)
	rows = min(rows, (height+1)/2)
	sample := func(x, y int) Pixel {
		var p Pixel
		off := (y*width + x) * BYTES_PER_PIXEL
		if off+BYTES_PER_PIXEL <= len(buf) {
			copy(p[:], buf[off:off+BYTES_PER_PIXEL])
		}
		return p
	}
	for cy := range rows {
		topY := (2 * cy) * height / (2 * rows)
		bottomY := min((2*cy+1)*height/(2*rows), height-1)
		for cx := range cols {
			px := cx * width / cols
			set(cx, cy, sample(px, topY), sample(px, bottomY))
		}
	}
}

func (t *TerminalOutput) Stop() error {
	t.stopOnce.Do(func() { close(t.stop) })
	t.started.Store(false)
	return nil
}

func (t *TerminalOutput) Close() error {
	return t.Stop()
}

func (t *TerminalOutput) IsStarted() bool {
	return t.started.Load()
}

func (t *TerminalOutput) Done() <-chan struct{} {
	return t.done
}

func (t *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if config.Width <= 0 {
		config.Width = t.config.Width
	}
	if config.Height <= 0 {
		config.Height = t.config.Height
	}
	if config.RefreshRate <= 0 {
		config.RefreshRate = t.config.RefreshRate
	}
	t.config = config
	if size := config.Width * config.Height * BYTES_PER_PIXEL; len(t.frameBuffer) != size {
		t.frameBuffer = make([]byte, size)
	}
	return nil
}

func (t *TerminalOutput) GetDisplayConfig() DisplayConfig {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.config
}

func (t *TerminalOutput) SetRenderer(r FrameRenderer) {
	t.mu.Lock()
	t.renderer = r
	t.mu.Unlock()
}

func (t *TerminalOutput) SetPasteHandler(fn func(string)) {
	t.mu.Lock()
	t.pasteHandler = fn
	t.mu.Unlock()
}

func (t *TerminalOutput) GetFrameCount() uint64 {
	return t.frameCount.Load()
}

func (t *TerminalOutput) GetRefreshRate() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.config.RefreshRate <= 0 {
		return DEFAULT_REFRESH_RATE
	}
	return t.config.RefreshRate
}

func (t *TerminalOutput) GetSnapshot() (FrameSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(t.frameBuffer)),
		Width:     t.config.Width,
		Height:    t.config.Height,
		Format:    PixelFormatRGBA,
		Timestamp: time.Now(),
	}
	copy(snapshot.Buffer, t.frameBuffer)
	return snapshot, nil
}

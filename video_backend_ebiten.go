//go:build !headless

// video_backend_ebiten.go - Ebiten window surface for PCD-68

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
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "surface:ebiten")
}

type EbitenOutput struct {
	running     atomic.Bool
	window      *ebiten.Image
	width       int
	height      int
	format      PixelFormat
	fullscreen  bool
	scale       int
	title       string
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  atomic.Uint64
	frameLimit  uint64
	refreshRate int
	vsyncChan   chan struct{}
	done        chan struct{}
	doneOnce    sync.Once

	renderer       FrameRenderer
	renderFailures uint64
	pasteHandler   func(string)

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{
		width:       DEFAULT_FRAME_WIDTH,
		height:      DEFAULT_FRAME_HEIGHT,
		format:      PixelFormatRGBA,
		scale:       2,
		title:       "PCD-68",
		frameBuffer: make([]byte, DEFAULT_FRAME_WIDTH*DEFAULT_FRAME_HEIGHT*BYTES_PER_PIXEL),
		refreshRate: DEFAULT_REFRESH_RATE,
		vsyncChan:   make(chan struct{}, 1),
		done:        make(chan struct{}),
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running.Load() {
		return nil
	}
	eo.running.Store(true)
	ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
	ebiten.SetWindowTitle(eo.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(eo.refreshRate)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go func() {
		defer func() {
			eo.running.Store(false)
			eo.closeDone()
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	select {
	case <-eo.vsyncChan:
	case <-eo.done:
	}
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running.Store(false)
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) closeDone() {
	eo.doneOnce.Do(func() { close(eo.done) })
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	return eo.done
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running.Load()
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	width := config.Width
	height := config.Height
	if width <= 0 {
		width = eo.width
	}
	if height <= 0 {
		height = eo.height
	}
	eo.width = width
	eo.height = height
	eo.format = config.PixelFormat
	eo.scale = ClampScale(config.Scale)
	eo.fullscreen = config.Fullscreen
	eo.frameLimit = config.FrameLimit
	if config.Title != "" {
		eo.title = config.Title
	}
	if config.RefreshRate > 0 {
		eo.refreshRate = config.RefreshRate
	}
	if newSize := eo.width * eo.height * BYTES_PER_PIXEL; len(eo.frameBuffer) != newSize {
		eo.frameBuffer = make([]byte, newSize)
	}
	if eo.window != nil {
		eo.window.Deallocate()
		eo.window = nil
	}
	if eo.running.Load() {
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
		}
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return DisplayConfig{
		Width:       eo.width,
		Height:      eo.height,
		Scale:       eo.scale,
		PixelFormat: eo.format,
		RefreshRate: eo.refreshRate,
		VSync:       true,
		Fullscreen:  eo.fullscreen,
		Title:       eo.title,
		FrameLimit:  eo.frameLimit,
	}
}

func (eo *EbitenOutput) SetRenderer(r FrameRenderer) {
	eo.bufferMutex.Lock()
	eo.renderer = r
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) SetPasteHandler(fn func(string)) {
	eo.bufferMutex.Lock()
	eo.pasteHandler = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return eo.frameCount.Load()
}

func (eo *EbitenOutput) GetRefreshRate() int {
	return eo.refreshRate
}

func (eo *EbitenOutput) GetSnapshot() (FrameSnapshot, error) {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()

	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(eo.frameBuffer)),
		Width:     eo.width,
		Height:    eo.height,
		Format:    eo.format,
		Timestamp: time.Now(),
	}
	copy(snapshot.Buffer, eo.frameBuffer)
	return snapshot, nil
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if eo.frameLimit > 0 && eo.frameCount.Load() >= eo.frameLimit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.bufferMutex.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
		}
		eo.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.bufferMutex.Lock()
		eo.showStatusBar = !eo.showStatusBar
		eo.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		eo.bufferMutex.RLock()
		toggler, ok := eo.renderer.(SplashToggler)
		eo.bufferMutex.RUnlock()
		if ok {
			toggler.ToggleSplash()
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		eo.handleClipboardPaste()
	}
	return nil
}

func (eo *EbitenOutput) handleClipboardPaste() {
	eo.bufferMutex.RLock()
	handler := eo.pasteHandler
	eo.bufferMutex.RUnlock()
	if handler == nil {
		return
	}
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	data = capPasteText(normalizePasteText(data), maxPasteBytes)
	handler(string(data))
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.bufferMutex.Lock()
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}
	if eo.renderer != nil {
		if err := eo.renderer.Render(eo.frameBuffer); err != nil {
			// Report the first failure and every 600th after it.
			if eo.renderFailures%600 == 0 {
				fmt.Printf("Display: render failed: %v\n", err)
			}
			eo.renderFailures++
		}
	}
	eo.window.WritePixels(eo.frameBuffer)
	showStatusBar := eo.showStatusBar
	eo.bufferMutex.Unlock()

	screen.DrawImage(eo.window, nil)
	if showStatusBar {
		eo.drawRuntimeStatusBar(screen)
	}

	eo.frameCount.Add(1)
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

func (eo *EbitenOutput) drawRuntimeStatusBar(screen *ebiten.Image) {
	lines := runtimeStatus.snapshot().lines()
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	barHeight := len(lines)*lineHeight + 4
	if barHeight >= eo.height {
		return
	}
	y := eo.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(eo.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	labelColor := color.RGBA{0, 220, 90, 255}
	for i, line := range lines {
		text.Draw(screen, line, face, 4, y+(i+1)*lineHeight, labelColor)
	}
}

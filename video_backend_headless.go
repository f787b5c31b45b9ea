//go:build headless

// video_backend_headless.go - In-memory surface for headless builds

package main

import (
	"sync"
	"sync/atomic"
	"time"
)

func init() {
	compiledFeatures = append(compiledFeatures, "surface:headless")
}

// HeadlessVideoOutput drives the renderer from a ticker into a private
// frame buffer. Nothing is presented.
type HeadlessVideoOutput struct {
	mu           sync.Mutex
	started      atomic.Bool
	config       DisplayConfig
	frameBuffer  []byte
	frameCount   atomic.Uint64
	renderer     FrameRenderer
	pasteHandler func(string)
	lastErr      error
	stop         chan struct{}
	done         chan struct{}
	stopOnce     sync.Once
}

func NewEbitenOutput() (VideoOutput, error) {
	return &HeadlessVideoOutput{
		config: DisplayConfig{
			Width:       DEFAULT_FRAME_WIDTH,
			Height:      DEFAULT_FRAME_HEIGHT,
			Scale:       1,
			RefreshRate: DEFAULT_REFRESH_RATE,
		},
		frameBuffer: make([]byte, DEFAULT_FRAME_WIDTH*DEFAULT_FRAME_HEIGHT*BYTES_PER_PIXEL),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	if h.started.Swap(true) {
		return nil
	}
	interval := time.Second / time.Duration(h.GetRefreshRate())
	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			h.RenderFrame()
			if limit := h.GetDisplayConfig().FrameLimit; limit > 0 && h.frameCount.Load() >= limit {
				h.started.Store(false)
				return
			}
			select {
			case <-h.stop:
				return
			case <-ticker.C:
			}
		}
	}()
	return nil
}

// RenderFrame runs the renderer once. The frame counts even when the
// renderer fails so a frame limit always ends the run.
func (h *HeadlessVideoOutput) RenderFrame() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer h.frameCount.Add(1)
	if h.renderer == nil {
		return nil
	}
	if err := h.renderer.Render(h.frameBuffer); err != nil {
		h.lastErr = err
		return err
	}
	return nil
}

func (h *HeadlessVideoOutput) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

func (h *HeadlessVideoOutput) Stop() error {
	h.stopOnce.Do(func() { close(h.stop) })
	h.started.Store(false)
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	return h.started.Load()
}

func (h *HeadlessVideoOutput) Done() <-chan struct{} {
	return h.done
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if config.Width <= 0 {
		config.Width = h.config.Width
	}
	if config.Height <= 0 {
		config.Height = h.config.Height
	}
	if config.RefreshRate <= 0 {
		config.RefreshRate = h.config.RefreshRate
	}
	h.config = config
	if size := config.Width * config.Height * BYTES_PER_PIXEL; len(h.frameBuffer) != size {
		h.frameBuffer = make([]byte, size)
	}
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

func (h *HeadlessVideoOutput) SetRenderer(r FrameRenderer) {
	h.mu.Lock()
	h.renderer = r
	h.mu.Unlock()
}

func (h *HeadlessVideoOutput) SetPasteHandler(fn func(string)) {
	h.mu.Lock()
	h.pasteHandler = fn
	h.mu.Unlock()
}

// Paste feeds text to the paste handler as if it came from the clipboard.
func (h *HeadlessVideoOutput) Paste(text string) {
	h.mu.Lock()
	handler := h.pasteHandler
	h.mu.Unlock()
	if handler != nil {
		handler(string(capPasteText(normalizePasteText([]byte(text)), maxPasteBytes)))
	}
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return h.frameCount.Load()
}

func (h *HeadlessVideoOutput) GetRefreshRate() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.config.RefreshRate == 0 {
		return DEFAULT_REFRESH_RATE
	}
	return h.config.RefreshRate
}

func (h *HeadlessVideoOutput) GetSnapshot() (FrameSnapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(h.frameBuffer)),
		Width:     h.config.Width,
		Height:    h.config.Height,
		Format:    PixelFormatRGBA,
		Timestamp: time.Now(),
	}
	copy(snapshot.Buffer, h.frameBuffer)
	return snapshot, nil
}

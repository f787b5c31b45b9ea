// video_interface.go - Display surface interface for PCD-68

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
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidGeometry  = errors.New("invalid display geometry")
	ErrGeometryOverflow = errors.New("text grid does not fit the frame")
	ErrGeometrySlack    = errors.New("text grid does not fill the frame exactly")
	ErrBufferTooSmall   = errors.New("pixel buffer smaller than frame")
	ErrInvalidFont      = errors.New("invalid font data")
)

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error { return e.Err }

// FrameSnapshot encapsulates the data needed to represent a complete frame
type FrameSnapshot struct {
	Buffer    []byte // Raw frame buffer data
	Width     int    // Frame width in pixels
	Height    int    // Frame height in pixels
	Format    PixelFormat
	Timestamp time.Time // When the snapshot was taken
}

// DisplayConfig contains hardware-independent configuration
type DisplayConfig struct {
	Width       int
	Height      int
	Scale       int // Integer scaling factor for output
	RefreshRate int // Target refresh rate in Hz
	PixelFormat PixelFormat
	VSync       bool // Whether to sync frame updates to display refresh
	Fullscreen  bool
	Title       string
	FrameLimit  uint64 // Stop after this many frames, 0 runs until closed
}

type PixelFormat int

const (
	PixelFormatRGBA PixelFormat = iota
)

// FrameRenderer fills a frame buffer once per display refresh. The buffer
// belongs to the surface and is only lent for the duration of the call.
type FrameRenderer interface {
	Render(buf []byte) error
}

// SplashToggler is implemented by renderers that can swap the text screen
// for a splash image.
type SplashToggler interface {
	ToggleSplash() bool
}

// VideoOutput is a presentation surface. It owns timing and the frame
// buffer, and calls its FrameRenderer once per refresh.
type VideoOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool
	Done() <-chan struct{}

	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	SetRenderer(r FrameRenderer)
	SetPasteHandler(fn func(text string))

	GetFrameCount() uint64
	GetRefreshRate() int
	GetSnapshot() (FrameSnapshot, error)
}

// Predefined video backend types
const (
	VIDEO_BACKEND_EBITEN   = iota // Ebiten window (headless build: in-memory)
	VIDEO_BACKEND_TERMINAL        // tcell terminal surface
)

const (
	DEFAULT_REFRESH_RATE = 60
	MAX_SCALE            = 8
)

func ClampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > MAX_SCALE {
		return MAX_SCALE
	}
	return scale
}

func ParseVideoBackend(name string) (int, error) {
	switch name {
	case "", "ebiten", "window":
		return VIDEO_BACKEND_EBITEN, nil
	case "terminal", "tcell":
		return VIDEO_BACKEND_TERMINAL, nil
	}
	return 0, fmt.Errorf("unknown surface %q (want ebiten or terminal)", name)
}

// NewVideoOutput creates a new video output instance using the specified backend
func NewVideoOutput(backend int) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput()
	case VIDEO_BACKEND_TERMINAL:
		return NewTerminalOutput()
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}

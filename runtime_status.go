package main

import (
	"fmt"
	"sync"
)

type runtimeStatusSnapshot struct {
	render  *RenderPass
	output  VideoOutput
	surface string
	source  string
}

type runtimeStatusStore struct {
	mu sync.RWMutex
	runtimeStatusSnapshot
}

func (s *runtimeStatusStore) setDisplay(render *RenderPass, output VideoOutput, surface string) {
	s.mu.Lock()
	s.render = render
	s.output = output
	s.surface = surface
	s.mu.Unlock()
}

func (s *runtimeStatusStore) setSource(source string) {
	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
}

func (s *runtimeStatusStore) snapshot() runtimeStatusSnapshot {
	s.mu.RLock()
	snap := s.runtimeStatusSnapshot
	s.mu.RUnlock()
	return snap
}

// lines formats the status bar, one string per line.
func (s runtimeStatusSnapshot) lines() []string {
	if s.render == nil {
		return nil
	}
	stats := s.render.Stats()
	geo := stats.Geometry

	textLine := fmt.Sprintf("TEXT  %d/%d rows  %dx%d grid  %d chars", stats.UsedRows, geo.Rows, geo.Cols, geo.Rows, stats.Layout.Written)
	if stats.Layout.Overflowed {
		textLine += "  OVERFLOW"
	}
	if s.source != "" {
		textLine += "  " + s.source
	}

	frames := stats.Frames
	if s.output != nil {
		frames = s.output.GetFrameCount()
	}
	frameLine := fmt.Sprintf("FRAME %d  %dx%d  %s", frames, geo.FrameWidth, geo.FrameHeight, s.surface)
	if stats.Splash {
		frameLine += "  SPLASH"
	}
	return []string{textLine, frameLine, "F2 Splash  F11 Fullscreen  F12 Status  Esc Quit"}
}

var runtimeStatus = &runtimeStatusStore{}

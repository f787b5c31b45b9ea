// display_config.go - Screen configuration file and colour parsing

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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ConfigError reports a configuration problem, with the file position when
// the TOML parser knows it.
type ConfigError struct {
	Path  string
	Field string
	Line  int
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("config %s:%d: %v", e.Path, e.Line, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	default:
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ScreenConfig is everything the display can be told from a config file.
// Command-line flags override it.
type ScreenConfig struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Cols        int    `toml:"cols"`
	Rows        int    `toml:"rows"`
	Scale       int    `toml:"scale"`
	RefreshRate int    `toml:"refresh_rate"`
	Fullscreen  bool   `toml:"fullscreen"`
	Surface     string `toml:"surface"`
	Foreground  string `toml:"foreground"`
	Background  string `toml:"background"`
	Policy      string `toml:"policy"`
	ExactFit    bool   `toml:"exact_fit"`
	Encoding    string `toml:"encoding"`
	Splash      string `toml:"splash"`
	Font        string `toml:"font"`
	Watch       bool   `toml:"watch"`
}

func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		Width:       DEFAULT_FRAME_WIDTH,
		Height:      DEFAULT_FRAME_HEIGHT,
		Scale:       2,
		RefreshRate: DEFAULT_REFRESH_RATE,
		Surface:     "ebiten",
		Foreground:  "#000000",
		Background:  "#ffffff",
		Policy:      LayoutTruncate.String(),
		Encoding:    "utf-8",
	}
}

// LoadScreenConfig reads a TOML file over base. Keys the file leaves out
// keep their base value; unknown keys are an error.
func LoadScreenConfig(path string, base ScreenConfig) (ScreenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, &ConfigError{Path: path, Err: err}
	}
	return ParseScreenConfig(path, data, base)
}

func ParseScreenConfig(path string, data []byte, base ScreenConfig) (ScreenConfig, error) {
	cfg := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ := decodeErr.Position()
			return base, &ConfigError{Path: path, Line: line, Err: err}
		}
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
			line, _ := strictErr.Errors[0].Position()
			return base, &ConfigError{Path: path, Line: line, Err: err}
		}
		return base, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// RenderConfig converts the file settings into render pass settings.
func (c ScreenConfig) RenderConfig() (RenderConfig, error) {
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		return RenderConfig{}, &ConfigError{Path: "screen", Field: "foreground", Err: err}
	}
	bg, err := ParseColor(c.Background)
	if err != nil {
		return RenderConfig{}, &ConfigError{Path: "screen", Field: "background", Err: err}
	}
	policy, err := ParseLayoutPolicy(c.Policy)
	if err != nil {
		return RenderConfig{}, &ConfigError{Path: "screen", Field: "policy", Err: err}
	}
	return RenderConfig{
		FrameWidth:  c.Width,
		FrameHeight: c.Height,
		Cols:        c.Cols,
		Rows:        c.Rows,
		Foreground:  fg,
		Background:  bg,
		Policy:      policy,
		ExactFit:    c.ExactFit,
	}, nil
}

func (c ScreenConfig) DisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:       c.Width,
		Height:      c.Height,
		Scale:       ClampScale(c.Scale),
		RefreshRate: c.RefreshRate,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
		Fullscreen:  c.Fullscreen,
		Title:       "PCD-68",
	}
}

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"green":  "#33ff33",
	"amber":  "#ffb000",
	"blue":   "#0000aa",
	"grey":   "#aaaaaa",
	"gray":   "#aaaaaa",
	"paper":  "#f4ecd8",
	"topaz":  "#0055aa",
	"orange": "#ff8800",
}

// ParseColor accepts #rgb, #rrggbb or a name from a short list of
// classic display colours. Colours are always opaque.
func ParseColor(s string) (Pixel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Pixel{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Pixel{r, g, b, 0xFF}, nil
}

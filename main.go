// main.go - Main entry point for the PCD-68 text display

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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxTextBytes bounds text read from stdin.
const maxTextBytes = 1 << 20

type displayOptions struct {
	screen   ScreenConfig
	textFile string
	text     string
	script   string
	pngPath  string
	frames   uint64
}

func boilerPlate() {
	fmt.Println("PCD-68 virtual retro computer - text display")
	fmt.Printf("Version %s\n", Version)
}

func main() {
	var (
		showFeatures bool
		showVersion  bool
		configPath   string
		opts         displayOptions
		flagCfg      = DefaultScreenConfig()
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "TOML screen configuration file")
	flagSet.StringVar(&opts.text, "text", "", "text to display (\\n starts a new line)")
	flagSet.StringVar(&opts.script, "script", "", "Lua script that prints the screen text")
	flagSet.StringVar(&opts.pngPath, "png", "", "render one frame to this PNG file and exit")
	flagSet.Uint64Var(&opts.frames, "frames", 0, "stop after this many frames (0 runs until closed)")
	flagSet.StringVar(&flagCfg.Encoding, "encoding", flagCfg.Encoding, "text file encoding: utf-8, cp437, cp850, latin1, iso-8859-15, cp1252")
	flagSet.BoolVar(&flagCfg.Watch, "watch", false, "reload the text file when it changes")
	flagSet.StringVar(&flagCfg.Surface, "surface", flagCfg.Surface, "output surface: ebiten, terminal or ansi")
	flagSet.StringVar(&flagCfg.Splash, "splash", "", "splash image shown at start (F2 toggles)")
	flagSet.StringVar(&flagCfg.Font, "font", "", "BDF font file (default: built-in 7x13)")
	flagSet.StringVar(&flagCfg.Foreground, "fg", flagCfg.Foreground, "ink colour (#rrggbb or name)")
	flagSet.StringVar(&flagCfg.Background, "bg", flagCfg.Background, "paper colour (#rrggbb or name)")
	flagSet.IntVar(&flagCfg.Cols, "cols", 0, "text columns (0 fills the frame)")
	flagSet.IntVar(&flagCfg.Rows, "rows", 0, "text rows (0 fills the frame)")
	flagSet.IntVar(&flagCfg.Width, "width", flagCfg.Width, "frame width in pixels")
	flagSet.IntVar(&flagCfg.Height, "height", flagCfg.Height, "frame height in pixels")
	flagSet.IntVar(&flagCfg.Scale, "scale", flagCfg.Scale, "window scale factor")
	flagSet.StringVar(&flagCfg.Policy, "policy", flagCfg.Policy, "text overflow policy: truncate or clamp")
	flagSet.BoolVar(&flagCfg.ExactFit, "exact", false, "reject grids that leave unused frame pixels")
	flagSet.BoolVar(&flagCfg.Fullscreen, "fullscreen", false, "start fullscreen")
	flagSet.BoolVar(&showFeatures, "features", false, "print compiled features and exit")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./pcd68 [flags] [textfile|-]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if showVersion {
		fmt.Println(Version)
		return
	}
	if showFeatures {
		printFeatures()
		return
	}

	screen := DefaultScreenConfig()
	if configPath != "" {
		loaded, err := LoadScreenConfig(configPath, screen)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		screen = loaded
	}
	flagSet.Visit(func(f *flag.Flag) {
		applyScreenFlag(&screen, flagCfg, f.Name)
	})
	opts.screen = screen
	opts.textFile = flagSet.Arg(0)

	if opts.pngPath == "" && screen.Surface != "ansi" {
		boilerPlate()
	}
	if err := runDisplay(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// applyScreenFlag copies one explicitly set flag over the loaded config.
func applyScreenFlag(dst *ScreenConfig, src ScreenConfig, name string) {
	switch name {
	case "encoding":
		dst.Encoding = src.Encoding
	case "watch":
		dst.Watch = src.Watch
	case "surface":
		dst.Surface = src.Surface
	case "splash":
		dst.Splash = src.Splash
	case "font":
		dst.Font = src.Font
	case "fg":
		dst.Foreground = src.Foreground
	case "bg":
		dst.Background = src.Background
	case "cols":
		dst.Cols = src.Cols
	case "rows":
		dst.Rows = src.Rows
	case "width":
		dst.Width = src.Width
	case "height":
		dst.Height = src.Height
	case "scale":
		dst.Scale = src.Scale
	case "policy":
		dst.Policy = src.Policy
	case "exact":
		dst.ExactFit = src.ExactFit
	case "fullscreen":
		dst.Fullscreen = src.Fullscreen
	}
}

func runDisplay(opts displayOptions) error {
	glyphs, err := loadGlyphs(opts.screen.Font)
	if err != nil {
		return err
	}
	renderCfg, err := opts.screen.RenderConfig()
	if err != nil {
		return err
	}
	rp, err := NewRenderPass(renderCfg, glyphs)
	if err != nil {
		return err
	}
	geometry := rp.Geometry()

	text, source, err := loadScreenText(opts, geometry)
	if err != nil {
		return err
	}
	res := rp.LoadText(text)
	if res.Overflowed {
		fmt.Printf("Display: text needs more than %d rows, %s policy applied\n", geometry.Rows, renderCfg.Policy)
	}
	runtimeStatus.setSource(source)

	if opts.screen.Splash != "" {
		img, err := LoadImageFile(opts.screen.Splash)
		if err != nil {
			return err
		}
		if err := rp.SetSplash(img); err != nil {
			return err
		}
		rp.ShowSplash(true)
	}

	if opts.pngPath != "" {
		return renderPNG(rp, opts.pngPath)
	}
	if opts.screen.Surface == "ansi" {
		buf := make([]byte, geometry.BufferSize())
		if err := rp.Render(buf); err != nil {
			return err
		}
		return WriteANSIFrame(os.Stdout, buf, geometry, terminalColumns(os.Stdout))
	}

	backend, err := ParseVideoBackend(opts.screen.Surface)
	if err != nil {
		return err
	}
	output, err := NewVideoOutput(backend)
	if err != nil {
		return err
	}
	display := opts.screen.DisplayConfig()
	display.FrameLimit = opts.frames
	if err := output.SetDisplayConfig(display); err != nil {
		return err
	}
	output.SetRenderer(rp)
	output.SetPasteHandler(func(text string) {
		rp.ShowSplash(false)
		rp.AppendText(text)
	})
	runtimeStatus.setDisplay(rp, output, opts.screen.Surface)

	if opts.screen.Watch && opts.textFile != "" && opts.textFile != "-" {
		watcher, err := WatchTextFile(opts.textFile, opts.screen.Encoding, func(text string) {
			res := rp.LoadText(text)
			fmt.Printf("Display: reloaded %s (%d chars)\n", opts.textFile, res.Written)
		})
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	fmt.Printf("Display: %s on %s surface\n", geometry, opts.screen.Surface)
	if err := output.Start(); err != nil {
		return err
	}
	<-output.Done()
	return output.Close()
}

func loadGlyphs(path string) (*GlyphTable, error) {
	if path != "" {
		return LoadBDFFile(path)
	}
	glyphs, err := NewDefaultGlyphTable()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return glyphs, nil
}

// loadScreenText picks the text source: script, stdin, file, -text or the
// demo page, in that order.
func loadScreenText(opts displayOptions, geometry FrameGeometry) (text, source string, err error) {
	switch {
	case opts.script != "":
		text, err = RunTextScriptFile(context.Background(), opts.script, geometry.Cols, geometry.Rows)
		return text, opts.script, err
	case opts.textFile == "-":
		text, err = ReadText(os.Stdin, opts.screen.Encoding, maxTextBytes)
		return text, "stdin", err
	case opts.textFile != "":
		text, err = LoadTextFile(opts.textFile, opts.screen.Encoding)
		return text, opts.textFile, err
	case opts.text != "":
		return strings.ReplaceAll(opts.text, `\n`, "\n"), "", nil
	}
	return defaultScreenText, "", nil
}

func renderPNG(rp *RenderPass, path string) (err error) {
	buf := make([]byte, rp.Geometry().BufferSize())
	if err := rp.Render(buf); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := WritePNGFrame(f, buf, rp.Geometry()); err != nil {
		return err
	}
	fmt.Printf("Display: wrote %s\n", path)
	return nil
}

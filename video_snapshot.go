// video_snapshot.go - Single-frame PNG and ANSI dumps

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
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/term"
)

// WritePNGFrame encodes a frame buffer as PNG.
func WritePNGFrame(w io.Writer, buf []byte, geometry FrameGeometry) error {
	if len(buf) < geometry.BufferSize() {
		return &VideoError{
			Operation: "png snapshot",
			Details:   fmt.Sprintf("buffer holds %d bytes, frame needs %d", len(buf), geometry.BufferSize()),
			Err:       ErrBufferTooSmall,
		}
	}
	return png.Encode(w, frameImage(buf, geometry))
}

// WriteANSIFrame prints a frame as 24-bit colour half blocks, at most cols
// characters wide. Zero cols prints one character per frame pixel.
func WriteANSIFrame(w io.Writer, buf []byte, geometry FrameGeometry, cols int) error {
	if len(buf) < geometry.BufferSize() {
		return &VideoError{
			Operation: "ansi snapshot",
			Details:   fmt.Sprintf("buffer holds %d bytes, frame needs %d", len(buf), geometry.BufferSize()),
			Err:       ErrBufferTooSmall,
		}
	}
	if cols <= 0 {
		cols = geometry.FrameWidth
	}
	cols = min(cols, geometry.FrameWidth)
	// Keep the aspect ratio: one cell is one pixel wide and two tall.
	rows := (geometry.FrameHeight*cols/geometry.FrameWidth + 1) / 2

	bw := bufio.NewWriter(w)
	lastRow := -1
	drawHalfBlocks(buf, geometry.FrameWidth, geometry.FrameHeight, cols, rows, func(x, y int, top, bottom Pixel) {
		if y != lastRow {
			if lastRow >= 0 {
				bw.WriteString("\x1b[0m\n")
			}
			lastRow = y
		}
		fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c",
			top[0], top[1], top[2], bottom[0], bottom[1], bottom[2], upperHalfBlock)
	})
	if lastRow >= 0 {
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

// terminalColumns returns the width of the terminal f is attached to, or 0
// when f is not a terminal.
func terminalColumns(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return cols
}

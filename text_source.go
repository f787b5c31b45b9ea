// text_source.go - Screen text sources: files, stdin and the demo page

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
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// defaultScreenText is the page shown when no text is given.
const defaultScreenText = `Hello World! Here is the first test of the bitmap font on the PCD-68.

Document Title
==============
So, how does a simple, ASCII, Markdown file look on this 400x300 framebuffer?
With a minimal-but-readable fixed font, this only gives us a small terminal,
but this should be sufficient for a number of applications.

## Craziness!!

So, yeah, this is some more text describing the project: a virtual retro
computer platform that can be emulated in code that is portable enough to run
on an embedded system, but also on the web.

The 'real' implementation of this virtual computer hardware can be realized in
physical form as a custom circuit with display and real I/O.

The experience of using this 'real' system can then be simulated elsewhere,
while using the same actual emulator code used in the real machine.`

// maxPasteBytes caps a single clipboard or terminal paste.
const maxPasteBytes = 4096

var textEncodings = map[string]encoding.Encoding{
	"cp437":        charmap.CodePage437,
	"ibm437":       charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// textDecoder returns nil for UTF-8, which needs no decoding.
func textDecoder(name string) (*encoding.Decoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, ok := textEncodings[name]
	if !ok {
		return nil, fmt.Errorf("unknown text encoding %q", name)
	}
	return enc.NewDecoder(), nil
}

// DecodeText converts raw bytes in the named encoding to screen text with
// Unix line endings.
func DecodeText(data []byte, encodingName string) (string, error) {
	dec, err := textDecoder(encodingName)
	if err != nil {
		return "", err
	}
	if dec != nil {
		data, err = dec.Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode %s text: %w", encodingName, err)
		}
	}
	return string(normalizePasteText(data)), nil
}

func LoadTextFile(path, encodingName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return DecodeText(data, encodingName)
}

// ReadText reads at most limit bytes from r.
func ReadText(r io.Reader, encodingName string, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return DecodeText(data, encodingName)
}

// normalizePasteText converts CR and CRLF line endings to LF.
func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	return raw[:max]
}

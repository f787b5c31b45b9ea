// video_splash.go - Splash image shown in place of the text screen

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
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ImageSource supplies an already decoded image.
type ImageSource interface {
	Image() image.Image
}

type StaticImage struct {
	img image.Image
}

func NewStaticImage(img image.Image) StaticImage { return StaticImage{img: img} }

func (s StaticImage) Image() image.Image { return s.img }

// LoadImageFile decodes a PNG, GIF or JPEG file.
func LoadImageFile(path string) (ImageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open splash image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode splash image %s: %w", path, err)
	}
	return NewStaticImage(img), nil
}

// Splash is an image pre-scaled to the frame, ready to be copied into a
// frame buffer.
type Splash struct {
	frame []byte
}

// NewSplash scales src to cover the whole frame. Nearest-neighbour keeps
// pixel art crisp.
func NewSplash(src ImageSource, geometry FrameGeometry) (*Splash, error) {
	img := src.Image()
	if img == nil || img.Bounds().Empty() {
		return nil, &VideoError{Operation: "splash", Details: "empty image"}
	}
	frame := make([]byte, geometry.BufferSize())
	dst := frameImage(frame, geometry)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return &Splash{frame: frame}, nil
}

// Paint copies the splash into buf.
func (s *Splash) Paint(buf []byte) error {
	if len(buf) < len(s.frame) {
		return &VideoError{
			Operation: "splash",
			Details:   fmt.Sprintf("buffer holds %d bytes, frame needs %d", len(buf), len(s.frame)),
			Err:       ErrBufferTooSmall,
		}
	}
	copy(buf, s.frame)
	return nil
}

// frameImage views a frame buffer as an image without copying it.
func frameImage(buf []byte, geometry FrameGeometry) *image.RGBA {
	return &image.RGBA{
		Pix:    buf[:geometry.BufferSize()],
		Stride: geometry.FrameWidth * BYTES_PER_PIXEL,
		Rect:   image.Rect(0, 0, geometry.FrameWidth, geometry.FrameHeight),
	}
}

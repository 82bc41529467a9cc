// Package imageio encodes a rendered frame buffer to PPM (P3 ASCII) or PNG,
// selecting format by filename extension unless an explicit format is given.
package imageio

import (
	"bufio"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the on-disk image encoding.
type Format int

const (
	// FormatAuto selects the format from the destination filename's extension.
	FormatAuto Format = iota
	FormatPPM
	FormatPNG
)

// Frame is a row-major, top-to-bottom RGB pixel buffer with 8-bit channels.
type Frame struct {
	Width  int
	Height int
	Pixels []color.RGBA // length Width*Height, row-major
}

// NewFrame allocates a blank frame of the given resolution.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]color.RGBA, width*height)}
}

// Set writes the pixel at (x,y), y measured from the top row.
func (f *Frame) Set(x, y int, c color.RGBA) {
	f.Pixels[y*f.Width+x] = c
}

// At returns the pixel at (x,y), y measured from the top row.
func (f *Frame) At(x, y int) color.RGBA {
	return f.Pixels[y*f.Width+x]
}

// WriteFile encodes frame to path, choosing format by extension unless
// format is an explicit override.
func WriteFile(path string, frame *Frame, format Format) error {
	if format == FormatAuto {
		format = formatFromExt(path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := Encode(w, frame, format); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return w.Flush()
}

// Encode writes frame to w in the given format. FormatAuto is treated as PPM.
func Encode(w io.Writer, frame *Frame, format Format) error {
	switch format {
	case FormatPNG:
		return encodePNG(w, frame)
	default:
		return encodePPM(w, frame)
	}
}

func formatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	default:
		return FormatPPM
	}
}

// encodePPM writes the P3 ASCII variant: header "P3\n{W} {H}\n255\n" then one
// "R G B" triple per pixel, row-major, top to bottom.
func encodePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for _, px := range frame.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", px.R, px.G, px.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// encodePNG re-encodes the frame buffer as lossless 8-bit RGB PNG.
func encodePNG(w io.Writer, frame *Frame) error {
	img := goimage.NewRGBA(goimage.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, frame.At(x, y))
		}
	}
	return png.Encode(w, img)
}

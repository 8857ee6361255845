// Package framebuffer provides the CPU-side RGBA render target presented by the host.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned for framebuffers without at least one pixel.
var ErrInvalidSize = errors.New("framebuffer dimensions must be positive")

// Framebuffer is a row-major RGBA pixel buffer written once per frame.
type Framebuffer struct {
	width  int
	height int
	pix    []byte
}

// New creates a new framebuffer with the specified dimensions.
func New(width, height int) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Stride returns the number of bytes per row.
func (fb *Framebuffer) Stride() int { return fb.width * 4 }

// Pix returns the backing pixel slice. Hosts upload it after a frame completes.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	if len(fb.pix) == 0 {
		return
	}
	fb.pix[0], fb.pix[1], fb.pix[2], fb.pix[3] = c.R, c.G, c.B, c.A
	// Doubling copy fills the rest in log2(n) passes.
	for filled := 4; filled < len(fb.pix); filled *= 2 {
		copy(fb.pix[filled:], fb.pix[:filled])
	}
}

// FillColumn paints rows [top, bottom) of column x with an opaque colour.
// Rows outside the framebuffer are skipped.
func (fb *Framebuffer) FillColumn(x, top, bottom int, r, g, b byte) {
	if x < 0 || x >= fb.width {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > fb.height {
		bottom = fb.height
	}
	stride := fb.width * 4
	for i := top*stride + x*4; top < bottom; top++ {
		fb.pix[i] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
		fb.pix[i+3] = 255
		i += stride
	}
}

// At returns the colour at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	i := y*fb.width*4 + x*4
	return color.RGBA{fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3]}
}

// Image wraps the pixels as an image.RGBA without copying.
func (fb *Framebuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.pix,
		Stride: fb.width * 4,
		Rect:   image.Rect(0, 0, fb.width, fb.height),
	}
}

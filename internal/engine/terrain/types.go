// Package terrain holds the static height and colour maps the renderer samples.
package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelspace/pkg/math"
)

var (
	// ErrNotPowerOfTwo is returned for textures whose sides cannot be wrapped with a bitmask.
	ErrNotPowerOfTwo = errors.New("texture dimensions must be powers of two")
	// ErrSizeMismatch is returned when the height and colour maps differ in size.
	ErrSizeMismatch = errors.New("height map and color map dimensions differ")
	// ErrPixelLength is returned when the pixel buffer does not hold width*height RGBA texels.
	ErrPixelLength = errors.New("pixel buffer length does not match dimensions")
)

// BytesPerTexel is the RGBA stride of every texture.
const BytesPerTexel = 4

// Texture is a decoded RGBA image, row-major, immutable after construction.
type Texture struct {
	Width  int
	Height int
	Pix    []byte
}

// NewTexture validates dimensions and wraps pix without copying.
func NewTexture(width, height int, pix []byte) (*Texture, error) {
	if !math.IsPowerOfTwo(width) || !math.IsPowerOfTwo(height) {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrNotPowerOfTwo)
	}
	if len(pix) != width*height*BytesPerTexel {
		return nil, fmt.Errorf("got %d bytes for %dx%d: %w", len(pix), width, height, ErrPixelLength)
	}
	return &Texture{Width: width, Height: height, Pix: pix}, nil
}

// Textures is the matched height/colour map pair for one session.
type Textures struct {
	HeightMap *Texture
	ColorMap  *Texture

	maskX int
	maskY int
}

// NewTextures pairs a height map with a colour map of the same size.
func NewTextures(height, color *Texture) (*Textures, error) {
	if height == nil || color == nil {
		return nil, errors.New("height map and color map are required")
	}
	for _, t := range []*Texture{height, color} {
		if _, err := NewTexture(t.Width, t.Height, t.Pix); err != nil {
			return nil, err
		}
	}
	if height.Width != color.Width || height.Height != color.Height {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w",
			height.Width, height.Height, color.Width, color.Height, ErrSizeMismatch)
	}
	return &Textures{
		HeightMap: height,
		ColorMap:  color,
		maskX:     height.Width - 1,
		maskY:     height.Height - 1,
	}, nil
}

// Width returns the shared map width.
func (t *Textures) Width() int { return t.HeightMap.Width }

// Rows returns the shared map height.
func (t *Textures) Rows() int { return t.HeightMap.Height }

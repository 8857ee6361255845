// Package texture decodes height and colour map images into terrain textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
)

// Load decodes the image at path into an RGBA terrain texture.
func Load(path string) (*terrain.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	tex, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tex, nil
}

// Decode decodes image bytes. ext selects the TGA decoder, which has no magic
// number; every other format is sniffed by image.Decode.
func Decode(data []byte, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// FromImage converts any image to a validated terrain texture.
func FromImage(img image.Image) (*terrain.Texture, error) {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return terrain.NewTexture(b.Dx(), b.Dy(), rgba.Pix)
}

// LoadPair loads a height map and colour map and checks they match.
func LoadPair(heightPath, colorPath string) (*terrain.Textures, error) {
	hm, err := Load(heightPath)
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	cm, err := Load(colorPath)
	if err != nil {
		return nil, fmt.Errorf("color map: %w", err)
	}
	return terrain.NewTextures(hm, cm)
}

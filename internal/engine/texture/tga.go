package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes a true-color TGA image, uncompressed or RLE, 24 or 32 bpp.
// Many classic height maps ship as TGA, which the standard library lacks.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}
	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	// Reject headers the payload cannot satisfy before allocating the image.
	// An RLE packet covers at most 128 pixels and costs at least 1+bpp bytes.
	pixels := width * height
	payload := len(data) - offset
	need := pixels * bpp / 8
	if imageType == TGATypeRLE {
		need = (pixels + 127) / 128 * (1 + bpp/8)
	}
	if payload < need {
		return nil, fmt.Errorf("%dx%d image needs %d bytes, have %d: %w", width, height, need, payload, errTGATruncated)
	}

	r := &tgaReader{
		data:   data[offset:],
		bpp:    bpp / 8,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		flip:   !topToBottom,
	}
	var err error
	if imageType == TGATypeUncompressed {
		err = r.raw(pixels)
	} else {
		err = r.rle()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	data   []byte
	pos    int
	bpp    int
	img    *image.RGBA
	width  int
	height int
	flip   bool
	pixel  int
}

// next reads one BGR(A) pixel.
func (r *tgaReader) next() (color.RGBA, error) {
	if r.pos+r.bpp > len(r.data) {
		return color.RGBA{}, errTGATruncated
	}
	p := r.data[r.pos:]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put stores c at the next pixel in file order, flipping bottom-up images.
func (r *tgaReader) put(c color.RGBA) {
	x, y := r.pixel%r.width, r.pixel/r.width
	if r.flip {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
	r.pixel++
}

func (r *tgaReader) raw(n int) error {
	total := r.width * r.height
	for i := 0; i < n && r.pixel < total; i++ {
		c, err := r.next()
		if err != nil {
			return err
		}
		r.put(c)
	}
	return nil
}

func (r *tgaReader) rle() error {
	total := r.width * r.height
	for r.pixel < total {
		if r.pos >= len(r.data) {
			return errTGATruncated
		}
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 == 0 {
			if err := r.raw(count); err != nil {
				return err
			}
			continue
		}
		c, err := r.next()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.pixel < total; i++ {
			r.put(c)
		}
	}
	return nil
}

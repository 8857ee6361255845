package terrain

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/voxelspace/pkg/math"
)

// GenerateParams controls synthetic terrain generation.
type GenerateParams struct {
	Size       int   // Side length in texels, power of two
	Seed       int64 // Lattice hash seed
	Octaves    int   // Number of noise octaves
	WaterLevel int   // Elevations below this are flattened into water
}

// DefaultGenerateParams returns the parameters used when no maps are configured.
func DefaultGenerateParams() GenerateParams {
	return GenerateParams{
		Size:       1024,
		Seed:       1,
		Octaves:    6,
		WaterLevel: 70,
	}
}

type colorBand struct {
	top byte
	rgb [3]byte
}

var bands = []colorBand{
	{top: 80, rgb: [3]byte{194, 178, 128}},  // sand
	{top: 150, rgb: [3]byte{86, 125, 70}},   // grass
	{top: 200, rgb: [3]byte{110, 100, 90}},  // rock
	{top: 255, rgb: [3]byte{235, 235, 240}}, // snow
}

var water = [3]byte{40, 90, 160}

// Generate builds a deterministic, seamlessly tiling height and colour map.
func Generate(p GenerateParams) (*Textures, error) {
	if !math.IsPowerOfTwo(p.Size) {
		return nil, fmt.Errorf("synthetic size %d: %w", p.Size, ErrNotPowerOfTwo)
	}
	if p.Octaves < 1 {
		p.Octaves = 1
	}

	n := p.Size
	elev := make([]byte, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := tiledNoise(float64(x)/float64(n), float64(y)/float64(n), p.Seed, p.Octaves)
			h := gomath.Pow(v, 1.4) * 255
			if h < float64(p.WaterLevel) {
				h = float64(p.WaterLevel)
			}
			elev[y*n+x] = byte(h)
		}
	}

	heightPix := make([]byte, n*n*BytesPerTexel)
	colorPix := make([]byte, n*n*BytesPerTexel)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := y*n + x
			h := elev[i]
			o := i * BytesPerTexel
			heightPix[o], heightPix[o+1], heightPix[o+2], heightPix[o+3] = h, h, h, 255

			rgb := water
			if int(h) > p.WaterLevel {
				rgb = bandColor(h)
				// Light from the north-west: brighten slopes that face it.
				nw := elev[((y-1)&(n-1))*n+((x-1)&(n-1))]
				shade := math.Clamp(1+float64(int(h)-int(nw))*0.05, 0.6, 1.3)
				for c := range rgb {
					rgb[c] = byte(math.Clamp(float64(rgb[c])*shade, 0, 255))
				}
			}
			colorPix[o], colorPix[o+1], colorPix[o+2], colorPix[o+3] = rgb[0], rgb[1], rgb[2], 255
		}
	}

	hm, err := NewTexture(n, n, heightPix)
	if err != nil {
		return nil, err
	}
	cm, err := NewTexture(n, n, colorPix)
	if err != nil {
		return nil, err
	}
	return NewTextures(hm, cm)
}

func bandColor(h byte) [3]byte {
	for _, b := range bands {
		if h <= b.top {
			return b.rgb
		}
	}
	return bands[len(bands)-1].rgb
}

// tiledNoise sums value-noise octaves over [0,1)^2 whose lattices have integer
// periods, so the result wraps at the unit square edges.
func tiledNoise(u, v float64, seed int64, octaves int) float64 {
	const basePeriod = 4
	sum, norm, amp := 0.0, 0.0, 1.0
	period := basePeriod
	for o := 0; o < octaves; o++ {
		sum += valueNoise(u*float64(period), v*float64(period), period, seed+int64(o)*131) * amp
		norm += amp
		amp *= 0.5
		period *= 2
	}
	return sum / norm
}

func valueNoise(x, y float64, period int, seed int64) float64 {
	x0, y0 := gomath.Floor(x), gomath.Floor(y)
	fx, fy := fade(x-x0), fade(y-y0)
	ix, iy := int64(x0), int64(y0)

	v00 := lattice(ix, iy, period, seed)
	v10 := lattice(ix+1, iy, period, seed)
	v01 := lattice(ix, iy+1, period, seed)
	v11 := lattice(ix+1, iy+1, period, seed)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lattice hashes a wrapped lattice point to [0,1].
func lattice(x, y int64, period int, seed int64) float64 {
	p := int64(period)
	x = ((x % p) + p) % p
	y = ((y % p) + p) % p
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

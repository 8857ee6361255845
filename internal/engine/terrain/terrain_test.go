package terrain

import (
	"bytes"
	"errors"
	"testing"
)

func solid(w, h int, r, g, b byte) *Texture {
	pix := make([]byte, w*h*BytesPerTexel)
	for i := 0; i < len(pix); i += BytesPerTexel {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
	}
	return &Texture{Width: w, Height: h, Pix: pix}
}

func TestNewTextureValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		pixLen  int
		wantErr error
	}{
		{"valid", 4, 8, 4 * 8 * 4, nil},
		{"non power of two width", 3, 4, 3 * 4 * 4, ErrNotPowerOfTwo},
		{"zero height", 4, 0, 0, ErrNotPowerOfTwo},
		{"short buffer", 4, 4, 10, ErrPixelLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTexture(tt.w, tt.h, make([]byte, tt.pixLen))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewTexturesMismatch(t *testing.T) {
	_, err := NewTextures(solid(4, 4, 0, 0, 0), solid(8, 4, 0, 0, 0))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if _, err := NewTextures(nil, solid(4, 4, 0, 0, 0)); err == nil {
		t.Error("expected error for missing height map")
	}
}

func TestOffsetWraps(t *testing.T) {
	hm := &Texture{Width: 8, Height: 4, Pix: make([]byte, 8*4*4)}
	for i := range hm.Pix {
		hm.Pix[i] = byte(i / 4)
	}
	tex, err := NewTextures(hm, solid(8, 4, 1, 2, 3))
	if err != nil {
		t.Fatalf("NewTextures: %v", err)
	}

	points := [][2]float64{{0, 0}, {3.5, 1.25}, {7.99, 3.99}, {-0.5, -0.5}, {5, 2}}
	for _, p := range points {
		base := tex.Offset(p[0], p[1])
		for k := -3; k <= 3; k++ {
			if got := tex.Offset(p[0]+float64(k*8), p[1]); got != base {
				t.Errorf("Offset(%v+%d*W, %v) = %d, want %d", p[0], k, p[1], got, base)
			}
			if got := tex.Offset(p[0], p[1]+float64(k*4)); got != base {
				t.Errorf("Offset(%v, %v+%d*H) = %d, want %d", p[0], p[1], k, got, base)
			}
		}
	}

	// -0.5 floors to -1 which wraps to the last column and row.
	if got := tex.Offset(-0.5, -0.5); got != 3*8+7 {
		t.Errorf("Offset(-0.5, -0.5) = %d, want %d", got, 3*8+7)
	}
	if got := tex.ElevationAt(5, 2); got != float64(2*8+5) {
		t.Errorf("ElevationAt(5, 2) = %v, want %d", got, 2*8+5)
	}
	r, g, b := tex.Color(0)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("Color(0) = (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := GenerateParams{Size: 64, Seed: 7, Octaves: 4, WaterLevel: 60}
	a, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(a.HeightMap.Pix, b.HeightMap.Pix) || !bytes.Equal(a.ColorMap.Pix, b.ColorMap.Pix) {
		t.Error("same params produced different terrain")
	}

	p.Seed = 8
	c, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bytes.Equal(a.HeightMap.Pix, c.HeightMap.Pix) {
		t.Error("different seeds produced identical terrain")
	}

	for i := 0; i < len(a.HeightMap.Pix); i += BytesPerTexel {
		if int(a.HeightMap.Pix[i]) < p.WaterLevel {
			t.Fatalf("texel %d below water level: %d", i/BytesPerTexel, a.HeightMap.Pix[i])
		}
	}
}

func TestGenerateTiles(t *testing.T) {
	// The noise lattice wraps, so opposite edges must be close in height.
	tex, err := Generate(GenerateParams{Size: 128, Seed: 3, Octaves: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	n := tex.Width()
	for y := 0; y < n; y++ {
		left := int(tex.ElevationAt(0, float64(y)))
		right := int(tex.ElevationAt(float64(n-1), float64(y)))
		if d := left - right; d > 48 || d < -48 {
			t.Fatalf("row %d: seam step %d between edges (%d vs %d)", y, d, left, right)
		}
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	if _, err := Generate(GenerateParams{Size: 100}); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("expected ErrNotPowerOfTwo, got %v", err)
	}
}

package terrain

import gomath "math"

// Offset returns the texel index for a map-space position. Coordinates wrap
// toroidally, so (x + k*Width, y) and (x, y) address the same texel.
func (t *Textures) Offset(x, y float64) int {
	ix := int(gomath.Floor(x)) & t.maskX
	iy := int(gomath.Floor(y)) & t.maskY
	return iy*t.HeightMap.Width + ix
}

// Elevation returns the height-map value (red channel) at texel offset.
func (t *Textures) Elevation(offset int) float64 {
	return float64(t.HeightMap.Pix[offset*BytesPerTexel])
}

// Color returns the RGB of the colour-map texel at offset.
func (t *Textures) Color(offset int) (r, g, b byte) {
	p := t.ColorMap.Pix[offset*BytesPerTexel:]
	return p[0], p[1], p[2]
}

// ElevationAt samples the height map at a map-space position.
func (t *Textures) ElevationAt(x, y float64) float64 {
	return t.Elevation(t.Offset(x, y))
}

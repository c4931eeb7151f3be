package microgl

// Color is an RGB color in 8-bit channels. Faces that never reach a color
// display still carry one so the same mesh renders on both output modes.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Scale multiplies the color by a brightness factor. The factor is clamped
// to [0,1] so channels saturate instead of wrapping.
func (c Color) Scale(factor Scalar) Color {
	f := Clamp01(factor)
	return Color{
		R: uint8(Scalar(c.R) * f),
		G: uint8(Scalar(c.G) * f),
		B: uint8(Scalar(c.B) * f),
	}
}

// RGB565 packs the color to 16 bits: rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Gray converts the color to 8-bit luma.
func (c Color) Gray() uint8 {
	return uint8((uint32(c.R)*77 + uint32(c.G)*150 + uint32(c.B)*29) >> 8)
}

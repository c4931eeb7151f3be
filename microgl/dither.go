package microgl

// bayer4 is the classic 4x4 ordered dithering matrix (thresholds 0-15).
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DitherPixel reports whether the pixel at screen position (x, y) should be
// lit to approximate the given brightness on a 1-bit display.
func DitherPixel(x, y int, brightness Scalar) bool {
	if brightness <= 0 {
		return false
	}
	if brightness >= 1 {
		return true
	}
	return brightness*16 > Scalar(bayer4[y&3][x&3])
}

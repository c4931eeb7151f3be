package microgl

import "math"

// fillTriangle rasterizes a projected triangle scanline by scanline: the
// points are sorted by Y, then each row interpolates X and depth along the
// long edge (top→bottom) and the active short edge, and the span between
// them is filled.
func (c *Context) fillTriangle(p0, p1, p2 Vec3, brightness Scalar, base Color) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p0.Y > p2.Y {
		p0, p2 = p2, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	iy0 := int(math.Ceil(float64(p0.Y)))
	iy2 := int(math.Floor(float64(p2.Y)))
	if iy2 < 0 || iy0 >= c.cfg.Height || iy0 > iy2 {
		return
	}
	if iy0 < 0 {
		iy0 = 0
	}
	if iy2 >= c.cfg.Height {
		iy2 = c.cfg.Height - 1
	}

	dyTotal := p2.Y - p0.Y
	dyUpper := p1.Y - p0.Y
	dyLower := p2.Y - p1.Y

	var invTotal, invUpper, invLower Scalar
	if dyTotal > 0.001 {
		invTotal = 1 / dyTotal
	}
	if dyUpper > 0.001 {
		invUpper = 1 / dyUpper
	}
	if dyLower > 0.001 {
		invLower = 1 / dyLower
	}

	for y := iy0; y <= iy2; y++ {
		fy := Scalar(y) + 0.5 // sample at pixel center

		tLong := (fy - p0.Y) * invTotal
		xLong := p0.X + (p2.X-p0.X)*tLong
		zLong := p0.Z + (p2.Z-p0.Z)*tLong

		var xShort, zShort Scalar
		if fy < p1.Y {
			t := (fy - p0.Y) * invUpper
			xShort = p0.X + (p1.X-p0.X)*t
			zShort = p0.Z + (p1.Z-p0.Z)*t
		} else {
			t := (fy - p1.Y) * invLower
			xShort = p1.X + (p2.X-p1.X)*t
			zShort = p1.Z + (p2.Z-p1.Z)*t
		}

		c.drawScanline(y, xLong, xShort, zLong, zShort, brightness, base)
	}
}

// drawScanline fills one row between two edge crossings, interpolating depth
// linearly and testing every pixel against the depth buffer (smaller is
// nearer).
func (c *Context) drawScanline(y int, x1, x2, z1, z2 Scalar, brightness Scalar, base Color) {
	if y < 0 || y >= c.cfg.Height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		z1, z2 = z2, z1
	}

	ix1 := int(x1)
	ix2 := int(x2)
	if ix2 < 0 || ix1 >= c.cfg.Width {
		return
	}

	dx := x2 - x1
	var dz Scalar
	if dx > 0.001 {
		dz = (z2 - z1) / dx
	}

	z := z1
	if ix1 < 0 {
		z += dz * (0 - x1)
		ix1 = 0
	}
	if ix2 >= c.cfg.Width {
		ix2 = c.cfg.Width - 1
	}

	for x := ix1; x <= ix2; x++ {
		idx := y*c.cfg.Width + x
		if z < c.depth[idx] {
			c.depth[idx] = z
			c.writePixel(x, y, brightness, base)
		}
		z += dz
	}
}

func (c *Context) writePixel(x, y int, brightness Scalar, base Color) {
	if c.cfg.Mode == OutputColor {
		c.color[y*c.cfg.Width+x] = base.Scale(brightness).RGB565()
		return
	}
	var on bool
	if c.cfg.Shading == ShadingFlat {
		on = brightness > 0.5
	} else {
		on = DitherPixel(x, y, brightness)
	}
	c.cfg.Display.SetPixel(x, y, on)
}

// drawLine is Bresenham's line, used by the wireframe path. Pixels are
// clipped here rather than relying on the target.
func (c *Context) drawLine(x0, y0, x1, y1 int, col Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if x0 >= 0 && x0 < c.cfg.Width && y0 >= 0 && y0 < c.cfg.Height {
			if c.cfg.Mode == OutputColor {
				c.color[y0*c.cfg.Width+x0] = col.RGB565()
			} else {
				c.cfg.Display.SetPixel(x0, y0, true)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

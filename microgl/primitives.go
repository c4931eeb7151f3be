package microgl

import "math"

// NewCube builds an axis-aligned cube of the given edge size centered on the
// origin: 8 vertices, 12 triangles, one pastel color per face pair.
func NewCube(size Scalar) *Mesh {
	m, err := NewMesh(8, 12)
	if err != nil {
		return nil
	}

	h := size / 2
	m.Vertices = append(m.Vertices,
		V3(-h, -h, -h),
		V3(h, -h, -h),
		V3(h, h, -h),
		V3(-h, h, -h),
		V3(-h, -h, h),
		V3(h, -h, h),
		V3(h, h, h),
		V3(-h, h, h),
	)
	m.Normals = m.Normals[:len(m.Vertices)]

	tris := [12][3]uint16{
		{0, 1, 2}, {0, 2, 3}, // front
		{5, 4, 7}, {5, 7, 6}, // back
		{4, 0, 3}, {4, 3, 7}, // left
		{1, 5, 6}, {1, 6, 2}, // right
		{3, 2, 6}, {3, 6, 7}, // top
		{4, 5, 1}, {4, 1, 0}, // bottom
	}
	colors := [6]Color{
		RGB(255, 200, 200),
		RGB(200, 200, 255),
		RGB(200, 255, 200),
		RGB(255, 255, 200),
		RGB(255, 200, 255),
		RGB(200, 255, 255),
	}
	for i, t := range tris {
		m.Faces = append(m.Faces, Face{V: t, N: t, Color: colors[i/2]})
	}

	m.RecalculateNormals()
	return m
}

// NewSphere builds a low-poly UV sphere. segments is clamped to [4,16];
// the sphere has segments-1 rings of 2*segments vertices plus two poles.
func NewSphere(radius Scalar, segments int) *Mesh {
	if segments < 4 {
		segments = 4
	}
	if segments > 16 {
		segments = 16
	}

	rings := segments
	slices := segments * 2
	vertCount := (rings-1)*slices + 2
	faceCount := (rings-2)*slices*2 + slices*2

	m, err := NewMesh(vertCount, faceCount)
	if err != nil {
		return nil
	}

	skin := RGB(255, 220, 180)

	m.Vertices = append(m.Vertices, V3(0, radius, 0))
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := radius * Scalar(math.Cos(phi))
		ringR := radius * Scalar(math.Sin(phi))
		for s := 0; s < slices; s++ {
			theta := 2 * math.Pi * float64(s) / float64(slices)
			m.Vertices = append(m.Vertices, V3(
				ringR*Scalar(math.Cos(theta)),
				y,
				ringR*Scalar(math.Sin(theta)),
			))
		}
	}
	m.Vertices = append(m.Vertices, V3(0, -radius, 0))
	m.Normals = m.Normals[:len(m.Vertices)]

	addTri := func(a, b, c int) {
		t := [3]uint16{uint16(a), uint16(b), uint16(c)}
		m.Faces = append(m.Faces, Face{V: t, N: t, Color: skin})
	}

	// Top cap.
	for s := 0; s < slices; s++ {
		addTri(0, 1+s, 1+(s+1)%slices)
	}
	// Middle quads.
	for r := 0; r < rings-2; r++ {
		ringStart := 1 + r*slices
		nextRing := 1 + (r+1)*slices
		for s := 0; s < slices; s++ {
			sn := (s + 1) % slices
			addTri(ringStart+s, nextRing+s, nextRing+sn)
			addTri(ringStart+s, nextRing+sn, ringStart+sn)
		}
	}
	// Bottom cap.
	lastRing := 1 + (rings-2)*slices
	bottom := len(m.Vertices) - 1
	for s := 0; s < slices; s++ {
		addTri(bottom, lastRing+(s+1)%slices, lastRing+s)
	}

	m.RecalculateNormals()
	return m
}

// NewFaceMesh builds the stylized low-poly face: a hand-placed silhouette
// with nose, two eye patches and a mouth. The geometry is declarative and
// takes no parameters.
func NewFaceMesh() *Mesh {
	m, err := NewMesh(32, 40)
	if err != nil {
		return nil
	}

	skin := RGB(255, 220, 190)
	eyeWhite := RGB(255, 255, 255)
	mouth := RGB(200, 100, 100)

	const (
		faceW Scalar = 1.0
		faceH Scalar = 1.2
		faceD Scalar = 0.5
	)

	m.Vertices = append(m.Vertices,
		V3(0, faceH*0.5, faceD*0.5),           // 0 top
		V3(-faceW*0.4, faceH*0.3, faceD),      // 1 upper left
		V3(faceW*0.4, faceH*0.3, faceD),       // 2 upper right
		V3(-faceW*0.5, 0, faceD),              // 3 mid left
		V3(faceW*0.5, 0, faceD),               // 4 mid right
		V3(-faceW*0.3, -faceH*0.4, faceD*0.8), // 5 lower left
		V3(faceW*0.3, -faceH*0.4, faceD*0.8),  // 6 lower right
		V3(0, -faceH*0.5, faceD*0.6),          // 7 chin
		V3(0, 0, faceD*1.1),                   // 8 nose tip

		V3(-0.35, 0.15, faceD+0.05), // 9 left eye center
		V3(-0.5, 0.15, faceD+0.02),  // 10
		V3(-0.2, 0.15, faceD+0.02),  // 11
		V3(-0.35, 0.25, faceD+0.02), // 12
		V3(-0.35, 0.05, faceD+0.02), // 13

		V3(0.35, 0.15, faceD+0.05), // 14 right eye center
		V3(0.2, 0.15, faceD+0.02),  // 15
		V3(0.5, 0.15, faceD+0.02),  // 16
		V3(0.35, 0.25, faceD+0.02), // 17
		V3(0.35, 0.05, faceD+0.02), // 18

		V3(-0.15, -0.25, faceD+0.02), // 19 mouth left
		V3(0.15, -0.25, faceD+0.02),  // 20 mouth right
		V3(0, -0.2, faceD+0.03),      // 21 mouth top
		V3(0, -0.3, faceD+0.02),      // 22 mouth bottom
	)
	m.Normals = m.Normals[:len(m.Vertices)]

	add := func(a, b, c uint16, col Color) {
		t := [3]uint16{a, b, c}
		m.Faces = append(m.Faces, Face{V: t, N: t, Color: col})
	}

	skinTris := [10][3]uint16{
		{0, 1, 2},
		{1, 3, 4}, {1, 4, 2},
		{3, 5, 6}, {3, 6, 4},
		{5, 7, 6},
		{1, 8, 3}, {3, 8, 5},
		{2, 4, 8}, {4, 6, 8},
	}
	for _, t := range skinTris {
		add(t[0], t[1], t[2], skin)
	}

	add(10, 12, 9, eyeWhite)
	add(9, 12, 11, eyeWhite)
	add(10, 9, 13, eyeWhite)
	add(9, 11, 13, eyeWhite)

	add(15, 17, 14, eyeWhite)
	add(14, 17, 16, eyeWhite)
	add(15, 14, 18, eyeWhite)
	add(14, 16, 18, eyeWhite)

	add(19, 21, 20, mouth)
	add(19, 20, 22, mouth)

	m.RecalculateNormals()
	return m
}

// NewCake builds the birthday cake: an 8-sided cake prism, an inset frosting
// rim, a fan-triangulated frosting cap, a square candle prism and a
// four-triangle flame, each with its own color.
func NewCake(size Scalar) *Mesh {
	m, err := NewMesh(36, 56)
	if err != nil {
		return nil
	}

	r := size * 0.5
	h := size * 0.35
	frostH := size * 0.08
	candleR := size * 0.08
	candleH := size * 0.35

	cake := RGB(255, 180, 140)
	frosting := RGB(255, 200, 210)
	candle := RGB(255, 255, 200)
	flame := RGB(255, 200, 80)

	const segments = 8
	ring := func(radius, y Scalar) {
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			m.Vertices = append(m.Vertices, V3(
				radius*Scalar(math.Cos(a)),
				y,
				radius*Scalar(math.Sin(a)),
			))
		}
	}

	ring(r, -h/2)            // 0..7 bottom
	ring(r, h/2)             // 8..15 top of cake body
	ring(r*0.92, h/2+frostH) // 16..23 frosting rim

	frostCenter := len(m.Vertices)
	m.Vertices = append(m.Vertices, V3(0, h/2+frostH, 0)) // 24

	candleBase := h/2 + frostH
	cv := len(m.Vertices)
	m.Vertices = append(m.Vertices,
		V3(-candleR, candleBase, -candleR),
		V3(candleR, candleBase, -candleR),
		V3(candleR, candleBase, candleR),
		V3(-candleR, candleBase, candleR),
		V3(-candleR, candleBase+candleH, -candleR),
		V3(candleR, candleBase+candleH, -candleR),
		V3(candleR, candleBase+candleH, candleR),
		V3(-candleR, candleBase+candleH, candleR),
	)

	flameBase := candleBase + candleH
	flameH := size * 0.2
	fv := len(m.Vertices)
	m.Vertices = append(m.Vertices,
		V3(0, flameBase, 0),
		V3(0, flameBase+flameH, 0),
	)
	m.Normals = m.Normals[:len(m.Vertices)]

	add := func(a, b, c int, col Color) {
		t := [3]uint16{uint16(a), uint16(b), uint16(c)}
		m.Faces = append(m.Faces, Face{V: t, N: t, Color: col})
	}

	// Cake body sides.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		add(i, next, segments+i, cake)
		add(next, segments+next, segments+i, cake)
	}
	// Frosting rim sides.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		add(segments+i, segments+next, 2*segments+i, frosting)
		add(segments+next, 2*segments+next, 2*segments+i, frosting)
	}
	// Frosting cap fan.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		add(frostCenter, 2*segments+i, 2*segments+next, frosting)
	}
	// Candle sides.
	add(cv+0, cv+1, cv+4, candle)
	add(cv+1, cv+5, cv+4, candle)
	add(cv+1, cv+2, cv+5, candle)
	add(cv+2, cv+6, cv+5, candle)
	add(cv+2, cv+3, cv+6, candle)
	add(cv+3, cv+7, cv+6, candle)
	add(cv+3, cv+0, cv+7, candle)
	add(cv+0, cv+4, cv+7, candle)
	// Candle top.
	add(cv+4, cv+5, cv+6, candle)
	add(cv+4, cv+6, cv+7, candle)
	// Flame pyramid to the tip.
	add(cv+4, cv+5, fv+1, flame)
	add(cv+5, cv+6, fv+1, flame)
	add(cv+6, cv+7, fv+1, flame)
	add(cv+7, cv+4, fv+1, flame)

	m.RecalculateNormals()
	return m
}

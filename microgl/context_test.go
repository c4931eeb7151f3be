package microgl

import "testing"

type fakeDisplay struct {
	w, h     int
	pix      []bool
	clears   int
	presents int
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pix: make([]bool, w*h)}
}

func (d *fakeDisplay) Size() (int, int) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int, on bool) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	d.pix[y*d.w+x] = on
}

func (d *fakeDisplay) Clear() {
	d.clears++
	for i := range d.pix {
		d.pix[i] = false
	}
}

func (d *fakeDisplay) Present() error {
	d.presents++
	return nil
}

func (d *fakeDisplay) onCount() int {
	n := 0
	for _, p := range d.pix {
		if p {
			n++
		}
	}
	return n
}

// triAt builds a single large triangle in the z=depth plane, wound so its
// normal points toward +Z (the default camera).
func triAt(t *testing.T, depth Scalar, col Color) *Mesh {
	t.Helper()
	m, err := NewMesh(3, 1)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	_ = m.AddVertex(V3(-1, -1, depth))
	_ = m.AddVertex(V3(1, -1, depth))
	_ = m.AddVertex(V3(0, 1, depth))
	if err := m.AddFace(Face{V: [3]uint16{0, 1, 2}, Color: col}); err != nil {
		t.Fatalf("AddFace: %v", err)
	}
	m.RecalculateNormals()
	return m
}

func newColorContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(Config{Width: 64, Height: 64, Mode: OutputColor})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestNewContextValidation(t *testing.T) {
	if _, err := NewContext(Config{Width: 0, Height: 64, Mode: OutputColor}); err == nil {
		t.Fatalf("zero width accepted")
	}
	if _, err := NewContext(Config{Width: 64, Height: 64, Mode: OutputMono}); err == nil {
		t.Fatalf("mono context without display accepted")
	}
	if _, err := NewContext(Config{Width: 64, Height: 64, Mode: OutputColor}); err != nil {
		t.Fatalf("color context without display rejected: %v", err)
	}
}

func TestDrawMeshFillsScreenCenter(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()
	ctx.DrawMesh(triAt(t, 0, RGB(255, 255, 255)))

	center := (ctx.Height()/2)*ctx.Width() + ctx.Width()/2
	if ctx.ColorPixels()[center] == 0 {
		t.Fatalf("center pixel not covered by a centered triangle")
	}
}

func TestBackFaceCulled(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()

	m := triAt(t, 0, RGB(255, 255, 255))
	// Reverse the winding so the face points away from the camera.
	m.Faces[0].V = [3]uint16{0, 2, 1}
	ctx.DrawMesh(m)

	for i, p := range ctx.ColorPixels() {
		if p != 0 {
			t.Fatalf("back-facing triangle wrote pixel %d", i)
		}
	}
}

func TestNearPlaneDropsWholeTriangle(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()
	// 0.1 in front of the default camera at z=5: projects to a negative
	// depth, so the whole triangle is dropped rather than clipped.
	ctx.DrawMesh(triAt(t, 4.9, RGB(255, 255, 255)))

	for i, p := range ctx.ColorPixels() {
		if p != 0 {
			t.Fatalf("near triangle wrote pixel %d, want whole-triangle drop", i)
		}
	}
}

func TestDepthOrderIndependent(t *testing.T) {
	near := func(t *testing.T) *Mesh { return triAt(t, 1, RGB(255, 0, 0)) }
	far := func(t *testing.T) *Mesh { return triAt(t, 0, RGB(0, 0, 255)) }

	a := newColorContext(t)
	a.Clear()
	a.DrawMesh(near(t))
	a.DrawMesh(far(t))

	b := newColorContext(t)
	b.Clear()
	b.DrawMesh(far(t))
	b.DrawMesh(near(t))

	for i := range a.ColorPixels() {
		if a.ColorPixels()[i] != b.ColorPixels()[i] {
			t.Fatalf("pixel %d differs with draw order: %04x vs %04x",
				i, a.ColorPixels()[i], b.ColorPixels()[i])
		}
	}

	// The shared center must show the near triangle.
	only := newColorContext(t)
	only.Clear()
	only.DrawMesh(near(t))
	center := (a.Height()/2)*a.Width() + a.Width()/2
	if a.ColorPixels()[center] != only.ColorPixels()[center] {
		t.Fatalf("center pixel %04x is not the near triangle's %04x",
			a.ColorPixels()[center], only.ColorPixels()[center])
	}
}

func TestMonoShadingModes(t *testing.T) {
	dithered := newFakeDisplay(64, 64)
	dc, err := NewContext(Config{Width: 64, Height: 64, Mode: OutputMono, Display: dithered})
	if err != nil {
		t.Fatalf("NewContext mono: %v", err)
	}
	dc.Clear()
	dc.DrawMesh(triAt(t, 0, RGB(255, 255, 255)))

	flat := newFakeDisplay(64, 64)
	fc, err := NewContext(Config{Width: 64, Height: 64, Mode: OutputMono, Shading: ShadingFlat, Display: flat})
	if err != nil {
		t.Fatalf("NewContext flat: %v", err)
	}
	fc.Clear()
	fc.DrawMesh(triAt(t, 0, RGB(255, 255, 255)))

	dOn, fOn := dithered.onCount(), flat.onCount()
	if dOn == 0 {
		t.Fatalf("dithered render lit no pixels")
	}
	// Default lighting leaves a camera-facing triangle partially bright, so
	// ordered dithering must leave holes that flat thresholding fills.
	if dOn >= fOn {
		t.Fatalf("dithered on-count %d not below flat on-count %d", dOn, fOn)
	}
}

func TestClearAndPresentDriveDisplay(t *testing.T) {
	d := newFakeDisplay(32, 32)
	ctx, err := NewContext(Config{Width: 32, Height: 32, Mode: OutputMono, Display: d})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.Clear()
	if d.clears != 1 {
		t.Fatalf("display clears = %d, want 1", d.clears)
	}
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if d.presents != 1 {
		t.Fatalf("display presents = %d, want 1", d.presents)
	}

	cc := newColorContext(t)
	if err := cc.Present(); err != nil {
		t.Fatalf("color Present: %v", err)
	}
}

func TestWireframeWritesEdges(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()
	ctx.DrawMeshWireframe(NewCube(1))

	lit := 0
	for _, p := range ctx.ColorPixels() {
		if p != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("wireframe cube lit no pixels")
	}
}

func TestDrawMeshPanicsOnBadIndex(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()

	m := triAt(t, 0, RGB(255, 255, 255))
	m.Faces[0].V[2] = 40 // corrupt past the vertex count

	defer func() {
		if recover() == nil {
			t.Fatalf("DrawMesh did not panic on out-of-range face index")
		}
	}()
	ctx.DrawMesh(m)
}

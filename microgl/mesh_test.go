package microgl

import "testing"

func TestNewMeshCapacity(t *testing.T) {
	m, err := NewMesh(4, 2)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if m.Scale != V3(1, 1, 1) {
		t.Fatalf("new mesh scale = %v, want unit", m.Scale)
	}
	for i := 0; i < 4; i++ {
		if err := m.AddVertex(V3(Scalar(i), 0, 0)); err != nil {
			t.Fatalf("AddVertex %d: %v", i, err)
		}
	}
	if err := m.AddVertex(V3(9, 9, 9)); err != ErrMeshFull {
		t.Fatalf("AddVertex beyond capacity: %v, want ErrMeshFull", err)
	}
}

func TestNewMeshInvalid(t *testing.T) {
	if _, err := NewMesh(0, 10); err == nil {
		t.Fatalf("NewMesh(0,10) succeeded, want error")
	}
	if _, err := NewMesh(10, -1); err == nil {
		t.Fatalf("NewMesh(10,-1) succeeded, want error")
	}
}

func TestAddFaceChecksIndices(t *testing.T) {
	m, _ := NewMesh(3, 2)
	for i := 0; i < 3; i++ {
		_ = m.AddVertex(V3(Scalar(i), 0, 0))
	}
	if err := m.AddFace(Face{V: [3]uint16{0, 1, 3}}); err == nil {
		t.Fatalf("AddFace with out-of-range index succeeded")
	}
	if err := m.AddFace(Face{V: [3]uint16{0, 1, 2}}); err != nil {
		t.Fatalf("AddFace valid: %v", err)
	}
}

func TestRecalculateNormalsFlatTriangle(t *testing.T) {
	m, _ := NewMesh(3, 1)
	_ = m.AddVertex(V3(0, 0, 0))
	_ = m.AddVertex(V3(1, 0, 0))
	_ = m.AddVertex(V3(0, 1, 0))
	_ = m.AddFace(Face{V: [3]uint16{0, 1, 2}})
	m.RecalculateNormals()

	want := V3(0, 0, 1)
	for i, n := range m.Normals {
		if !almostEqual(n.X, want.X, 1e-5) || !almostEqual(n.Y, want.Y, 1e-5) || !almostEqual(n.Z, want.Z, 1e-5) {
			t.Fatalf("normal %d = %v, want %v", i, n, want)
		}
	}
}

func TestRecalculateNormalsAreaWeighted(t *testing.T) {
	// Vertex 0 is shared by a large +Z face and a small +X face; the larger
	// face must dominate the accumulated normal.
	m, _ := NewMesh(5, 2)
	_ = m.AddVertex(V3(0, 0, 0)) // shared
	_ = m.AddVertex(V3(10, 0, 0))
	_ = m.AddVertex(V3(0, 10, 0))
	_ = m.AddVertex(V3(0, 0.1, 0))
	_ = m.AddVertex(V3(0, 0, 0.1))
	_ = m.AddFace(Face{V: [3]uint16{0, 1, 2}}) // +Z, area 50
	_ = m.AddFace(Face{V: [3]uint16{0, 3, 4}}) // +X, area 0.005
	m.RecalculateNormals()

	n := m.Normals[0]
	if n.Z < 0.99 {
		t.Fatalf("shared normal %v not dominated by the larger face", n)
	}
	if n.X <= 0 {
		t.Fatalf("shared normal %v lost the small face contribution entirely", n)
	}
}

func TestCubeShape(t *testing.T) {
	m := NewCube(2)
	if len(m.Vertices) != 8 {
		t.Fatalf("cube vertices = %d, want 8", len(m.Vertices))
	}
	if len(m.Faces) != 12 {
		t.Fatalf("cube faces = %d, want 12", len(m.Faces))
	}
	for fi, f := range m.Faces {
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			t.Fatalf("face %d has repeated indices %v", fi, f.V)
		}
		for _, vi := range f.V {
			if vi >= 8 {
				t.Fatalf("face %d index %d out of range", fi, vi)
			}
		}
	}
	for i, v := range m.Vertices {
		if !almostEqual(absScalar(v.X), 1, 1e-6) || !almostEqual(absScalar(v.Y), 1, 1e-6) || !almostEqual(absScalar(v.Z), 1, 1e-6) {
			t.Fatalf("cube vertex %d = %v, want corners at ±1", i, v)
		}
	}
}

func TestSphereShape(t *testing.T) {
	const radius = 1.5
	m := NewSphere(radius, 8)
	want := 2 + 7*16
	if len(m.Vertices) != want {
		t.Fatalf("sphere vertices = %d, want %d", len(m.Vertices), want)
	}
	for i, v := range m.Vertices {
		if !almostEqual(Len(v), radius, 1e-3) {
			t.Fatalf("sphere vertex %d at distance %v, want %v", i, Len(v), radius)
		}
	}
	if len(m.Faces) == 0 || len(m.Faces) > cap(m.Faces) {
		t.Fatalf("sphere face count %d exceeds capacity %d", len(m.Faces), cap(m.Faces))
	}
}

func TestSphereClampsSegments(t *testing.T) {
	lo := NewSphere(1, 1)
	if got, want := len(lo.Vertices), 2+3*8; got != want {
		t.Fatalf("segments clamped low: vertices = %d, want %d", got, want)
	}
	hi := NewSphere(1, 99)
	if got, want := len(hi.Vertices), 2+15*32; got != want {
		t.Fatalf("segments clamped high: vertices = %d, want %d", got, want)
	}
}

func TestFaceMeshShape(t *testing.T) {
	m := NewFaceMesh()
	if len(m.Vertices) != 23 {
		t.Fatalf("face mesh vertices = %d, want 23", len(m.Vertices))
	}
	if len(m.Faces) != 20 {
		t.Fatalf("face mesh faces = %d, want 20", len(m.Faces))
	}
	checkFacesInRange(t, m)
}

func TestCakeShape(t *testing.T) {
	m := NewCake(1.5)
	if len(m.Vertices) != 35 {
		t.Fatalf("cake vertices = %d, want 35", len(m.Vertices))
	}
	if len(m.Faces) != 54 {
		t.Fatalf("cake faces = %d, want 54", len(m.Faces))
	}
	checkFacesInRange(t, m)
}

func TestGeneratorNormalsUnit(t *testing.T) {
	for _, m := range []*Mesh{NewCube(1), NewSphere(1, 6), NewFaceMesh(), NewCake(1)} {
		for i, n := range m.Normals {
			l := Len(n)
			if l != 0 && !almostEqual(l, 1, 1e-4) {
				t.Fatalf("normal %d has length %v", i, l)
			}
		}
	}
}

func checkFacesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	for fi, f := range m.Faces {
		for _, vi := range f.V {
			if int(vi) >= len(m.Vertices) {
				t.Fatalf("face %d references vertex %d of %d", fi, vi, len(m.Vertices))
			}
		}
	}
}

func absScalar(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}

package microgl

import (
	"errors"
	"fmt"
)

// Loader limits. A single mesh loaded from external data may not exceed
// these; procedural generators size their meshes exactly and are not bound
// by them.
const (
	MaxVertices = 128
	MaxFaces    = 256
)

var (
	ErrMeshFull    = errors.New("mesh capacity exceeded")
	ErrVertexIndex = errors.New("face references vertex out of range")
)

// Face is a triangle: three vertex indices, three normal indices (currently
// mirroring the vertex indices) and one flat color.
type Face struct {
	V     [3]uint16
	N     [3]uint16
	Color Color
}

// Mesh owns vertex, normal and face storage plus an object transform.
// Capacity is fixed at creation; producers must stay within it.
//
// Normals are per-vertex and parallel to Vertices; RecalculateNormals keeps
// them in sync. Rotation is Euler degrees per axis.
type Mesh struct {
	Vertices []Vec3
	Normals  []Vec3
	Faces    []Face

	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewMesh creates an empty mesh that can hold up to maxVerts vertices and
// maxFaces faces. Capacities must be positive and fit uint16 indexing.
func NewMesh(maxVerts, maxFaces int) (*Mesh, error) {
	if maxVerts <= 0 || maxFaces <= 0 {
		return nil, fmt.Errorf("microgl: invalid mesh capacity %d/%d", maxVerts, maxFaces)
	}
	if maxVerts > 1<<16 || maxFaces > 1<<16 {
		return nil, fmt.Errorf("microgl: mesh capacity %d/%d exceeds uint16 indexing", maxVerts, maxFaces)
	}
	return &Mesh{
		Vertices: make([]Vec3, 0, maxVerts),
		Normals:  make([]Vec3, 0, maxVerts),
		Faces:    make([]Face, 0, maxFaces),
		Scale:    V3(1, 1, 1),
	}, nil
}

// AddVertex appends a vertex, keeping the normal array parallel.
func (m *Mesh) AddVertex(v Vec3) error {
	if len(m.Vertices) >= cap(m.Vertices) {
		return ErrMeshFull
	}
	m.Vertices = append(m.Vertices, v)
	m.Normals = append(m.Normals, Vec3{})
	return nil
}

// AddFace appends a triangle. Every vertex index must reference a vertex
// already present in the mesh.
func (m *Mesh) AddFace(f Face) error {
	if len(m.Faces) >= cap(m.Faces) {
		return ErrMeshFull
	}
	n := len(m.Vertices)
	for _, vi := range f.V {
		if int(vi) >= n {
			return fmt.Errorf("%w: %d of %d", ErrVertexIndex, vi, n)
		}
	}
	m.Faces = append(m.Faces, f)
	return nil
}

// RecalculateNormals rebuilds the per-vertex normals: each face contributes
// its unnormalized geometric normal to its three vertices, so larger faces
// weigh proportionally more, then every vertex normal is normalized.
// A vertex whose contributions sum to near zero keeps a zero normal.
func (m *Mesh) RecalculateNormals() {
	m.Normals = m.Normals[:len(m.Vertices)]
	for i := range m.Normals {
		m.Normals[i] = Vec3{}
	}
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]]
		v1 := m.Vertices[f.V[1]]
		v2 := m.Vertices[f.V[2]]
		n := Cross(v1.Sub(v0), v2.Sub(v0))
		m.Normals[f.V[0]] = m.Normals[f.V[0]].Add(n)
		m.Normals[f.V[1]] = m.Normals[f.V[1]].Add(n)
		m.Normals[f.V[2]] = m.Normals[f.V[2]].Add(n)
	}
	for i := range m.Normals {
		m.Normals[i] = Normalize(m.Normals[i])
	}
}

func (m *Mesh) SetPosition(x, y, z Scalar) { m.Position = V3(x, y, z) }
func (m *Mesh) SetRotation(x, y, z Scalar) { m.Rotation = V3(x, y, z) }
func (m *Mesh) SetScale(x, y, z Scalar)    { m.Scale = V3(x, y, z) }

// modelMatrix composes translate * rotY * rotX * rotZ * scale, i.e. scale
// is applied to a vertex first and translation last.
func (m *Mesh) modelMatrix() Mat4 {
	mm := Mat4Mul(Mat4RotateZ(m.Rotation.Z), Mat4Scale(m.Scale.X, m.Scale.Y, m.Scale.Z))
	mm = Mat4Mul(Mat4RotateX(m.Rotation.X), mm)
	mm = Mat4Mul(Mat4RotateY(m.Rotation.Y), mm)
	return Mat4Mul(Mat4Translate(m.Position.X, m.Position.Y, m.Position.Z), mm)
}

func faceNormal(v0, v1, v2 Vec3) Vec3 {
	return Normalize(Cross(v1.Sub(v0), v2.Sub(v0)))
}

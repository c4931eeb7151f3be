// Package obj loads Wavefront OBJ geometry into microgl meshes. The parser
// reads vertex positions and faces only; texture and normal references are
// accepted and discarded, normals are recomputed from the faces.
package obj

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"desktoy/microgl"
)

const (
	// maxFileSize bounds LoadFile; models beyond it never fit the mesh
	// limits anyway.
	maxFileSize = 64 * 1024
	// maxFaceRefs is the largest polygon a single f line may carry.
	// Further references on the line are ignored.
	maxFaceRefs = 16
)

var (
	ErrNoVertices = errors.New("obj: no vertices found")
	ErrTooLarge   = errors.New("obj: model exceeds mesh limits")
	ErrFileSize   = errors.New("obj: invalid file size")
)

// Load parses OBJ text into a mesh. Faces are fan-triangulated, every
// triangle gets defaultColor, and vertex normals are recalculated once at
// the end. References outside the vertices seen so far are dropped
// silently, matching the forgiving behavior of most small-model viewers.
func Load(data []byte, defaultColor microgl.Color) (*microgl.Mesh, error) {
	lines := strings.Split(string(data), "\n")

	vertCount, faceCount := countElements(lines)
	if vertCount == 0 {
		return nil, ErrNoVertices
	}
	if vertCount > microgl.MaxVertices || faceCount > microgl.MaxFaces {
		return nil, fmt.Errorf("%w: %d verts, %d faces (max %d/%d)",
			ErrTooLarge, vertCount, faceCount, microgl.MaxVertices, microgl.MaxFaces)
	}

	meshFaces := faceCount
	if meshFaces == 0 {
		meshFaces = 1
	}
	mesh, err := microgl.NewMesh(vertCount, meshFaces)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}

	var refs [maxFaceRefs]uint16
	for _, raw := range lines {
		line := strings.TrimLeft(raw, " \t\r")
		switch {
		case strings.HasPrefix(line, "v "):
			var v [3]microgl.Scalar
			for i, field := range strings.Fields(line[2:]) {
				if i >= 3 {
					break
				}
				f, err := strconv.ParseFloat(field, 32)
				if err != nil {
					f = 0
				}
				v[i] = microgl.Scalar(f)
			}
			if err := mesh.AddVertex(microgl.V3(v[0], v[1], v[2])); err != nil {
				return nil, fmt.Errorf("obj: %w", err)
			}

		case strings.HasPrefix(line, "f "):
			n := 0
			for _, field := range strings.Fields(line[2:]) {
				if n >= maxFaceRefs {
					break
				}
				idx, ok := resolveIndex(field, len(mesh.Vertices))
				if !ok {
					continue
				}
				refs[n] = idx
				n++
			}
			for i := 1; i < n-1; i++ {
				f := microgl.Face{
					V:     [3]uint16{refs[0], refs[i], refs[i+1]},
					Color: defaultColor,
				}
				f.N = f.V
				if err := mesh.AddFace(f); err != nil {
					return nil, fmt.Errorf("obj: %w", err)
				}
			}
		}
	}

	mesh.RecalculateNormals()
	return mesh, nil
}

// LoadFile reads and parses an OBJ file. Empty files and files larger than
// 64 KB are rejected before reading.
func LoadFile(path string, defaultColor microgl.Color) (*microgl.Mesh, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	if info.Size() <= 0 || info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileSize, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return Load(data, defaultColor)
}

// Stats renders the one-line load diagnostic shown on the status screen.
func Stats(m *microgl.Mesh) string {
	return fmt.Sprintf("OK: %d verts, %d faces", len(m.Vertices), len(m.Faces))
}

// countElements sizes the mesh before parsing: one vertex per "v " line,
// and per "f " line one triangle per reference beyond the first two.
func countElements(lines []string) (verts, faces int) {
	for _, raw := range lines {
		line := strings.TrimLeft(raw, " \t\r")
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			n := len(strings.Fields(line[2:]))
			if n > maxFaceRefs {
				n = maxFaceRefs
			}
			if n >= 3 {
				faces += n - 2
			}
		}
	}
	return verts, faces
}

// resolveIndex turns one face reference ("7", "7/2", "7//3", "7/2/3", "-1")
// into a zero-based vertex index. OBJ indices are 1-based; negative indices
// count back from the vertices parsed so far. Out-of-range references are
// reported as not ok.
func resolveIndex(field string, vertsSoFar int) (uint16, bool) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	if idx < 0 {
		idx = vertsSoFar + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= vertsSoFar {
		return 0, false
	}
	return uint16(idx), true
}

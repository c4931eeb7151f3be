package obj

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"desktoy/microgl"
)

const quadOBJ = `# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func TestLoadQuadFanTriangulates(t *testing.T) {
	m, err := Load([]byte(quadOBJ), microgl.RGB(200, 200, 200))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(m.Vertices))
	}
	if len(m.Faces) != 2 {
		t.Fatalf("faces = %d, want 2", len(m.Faces))
	}
	if m.Faces[0].V != [3]uint16{0, 1, 2} {
		t.Fatalf("first triangle = %v, want fan {0 1 2}", m.Faces[0].V)
	}
	if m.Faces[1].V != [3]uint16{0, 2, 3} {
		t.Fatalf("second triangle = %v, want fan {0 2 3}", m.Faces[1].V)
	}
	if m.Faces[0].Color != microgl.RGB(200, 200, 200) {
		t.Fatalf("face color = %v, want the default color", m.Faces[0].Color)
	}
}

func TestLoadIndexForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1/5 2/6/7 3//8
f -3 -2 -1
`
	m, err := Load([]byte(src), microgl.RGB(255, 255, 255))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Faces) != 2 {
		t.Fatalf("faces = %d, want 2", len(m.Faces))
	}
	want := [3]uint16{0, 1, 2}
	if m.Faces[0].V != want || m.Faces[1].V != want {
		t.Fatalf("slash and negative forms resolved to %v / %v, want %v both",
			m.Faces[0].V, m.Faces[1].V, want)
	}
}

func TestLoadDiscardsOutOfRangeRefs(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3 99
`
	m, err := Load([]byte(src), microgl.RGB(255, 255, 255))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// The bad reference drops out, leaving a plain triangle.
	if len(m.Faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(m.Faces))
	}
	if m.Faces[0].V != [3]uint16{0, 1, 2} {
		t.Fatalf("triangle = %v, want {0 1 2}", m.Faces[0].V)
	}
}

func TestLoadNoVertices(t *testing.T) {
	if _, err := Load([]byte("# empty\n"), microgl.RGB(0, 0, 0)); !errors.Is(err, ErrNoVertices) {
		t.Fatalf("Load of empty model: %v, want ErrNoVertices", err)
	}
}

func TestLoadTooLarge(t *testing.T) {
	var b strings.Builder
	for i := 0; i <= microgl.MaxVertices; i++ {
		b.WriteString("v 0 0 0\n")
	}
	if _, err := Load([]byte(b.String()), microgl.RGB(0, 0, 0)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("oversized model: %v, want ErrTooLarge", err)
	}
}

func TestLoadRecalculatesNormals(t *testing.T) {
	m, err := Load([]byte(quadOBJ), microgl.RGB(255, 255, 255))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, n := range m.Normals {
		if n.Z < 0.99 {
			t.Fatalf("normal %d = %v, want +Z for a z=0 quad", i, n)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := LoadFile(path, microgl.RGB(255, 255, 255))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := Stats(m); got != "OK: 4 verts, 2 faces" {
		t.Fatalf("Stats = %q", got)
	}

	empty := filepath.Join(dir, "empty.obj")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(empty, microgl.RGB(0, 0, 0)); !errors.Is(err, ErrFileSize) {
		t.Fatalf("empty file: %v, want ErrFileSize", err)
	}

	big := filepath.Join(dir, "big.obj")
	if err := os.WriteFile(big, make([]byte, 64*1024+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(big, microgl.RGB(0, 0, 0)); !errors.Is(err, ErrFileSize) {
		t.Fatalf("oversized file: %v, want ErrFileSize", err)
	}
}

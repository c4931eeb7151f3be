package microgl

import (
	"errors"
	"fmt"
)

// OutputMode selects where shaded pixels go.
type OutputMode uint8

const (
	// OutputMono writes 1-bit pixels through the display Target.
	OutputMono OutputMode = iota
	// OutputColor writes packed RGB565 pixels into a context-owned buffer.
	OutputColor
)

// ShadingMode selects how brightness becomes a 1-bit pixel in mono mode.
type ShadingMode uint8

const (
	// ShadingDithered compares brightness against the Bayer 4x4 pattern.
	ShadingDithered ShadingMode = iota
	// ShadingFlat lights a pixel iff brightness exceeds 0.5.
	ShadingFlat
)

// depthFar is the depth buffer clear value, larger than any projected depth.
const depthFar = 1000.0

var errNoDisplay = errors.New("microgl: mono output requires a display target")

// Camera is pure view configuration; it is copied into the context by
// SetCamera. FOV is the vertical field of view in degrees.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FOV      Scalar
	Near     Scalar
	Far      Scalar
}

// Light is the single directional light. Direction points from the light
// into the scene.
type Light struct {
	Direction Vec3
	Intensity Scalar
	Ambient   Scalar
}

// Config describes a render context. Display is required in mono mode and
// unused in color mode.
type Config struct {
	Width   int
	Height  int
	Mode    OutputMode
	Shading ShadingMode
	Display Target
}

// Context owns the camera, light, derived matrices and the frame buffers.
// One goroutine owns a Context; no two frames may be in flight at once.
type Context struct {
	cfg    Config
	camera Camera
	light  Light
	view   Mat4
	proj   Mat4

	depth []Scalar
	color []uint16 // nil in mono mode
}

// NewContext creates a render context and allocates its buffers once.
func NewContext(cfg Config) (*Context, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("microgl: invalid context size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode == OutputMono && cfg.Display == nil {
		return nil, errNoDisplay
	}

	ctx := &Context{
		cfg:   cfg,
		depth: make([]Scalar, cfg.Width*cfg.Height),
	}
	if cfg.Mode == OutputColor {
		ctx.color = make([]uint16, cfg.Width*cfg.Height)
	}

	ctx.SetCamera(Camera{
		Position: V3(0, 0, 5),
		Target:   V3(0, 0, 0),
		Up:       V3(0, 1, 0),
		FOV:      60,
		Near:     0.1,
		Far:      100,
	})
	ctx.SetLight(Light{
		Direction: V3(-0.5, -1.0, -0.7),
		Intensity: 1.0,
		Ambient:   0.2,
	})
	return ctx, nil
}

func (c *Context) Width() int  { return c.cfg.Width }
func (c *Context) Height() int { return c.cfg.Height }

// ColorPixels exposes the packed RGB565 frame in color mode; nil otherwise.
// The slice is owned by the context and overwritten every frame.
func (c *Context) ColorPixels() []uint16 { return c.color }

// Clear resets the depth buffer to the far sentinel and blanks the output.
func (c *Context) Clear() {
	for i := range c.depth {
		c.depth[i] = depthFar
	}
	if c.cfg.Mode == OutputColor {
		for i := range c.color {
			c.color[i] = 0
		}
		return
	}
	c.cfg.Display.Clear()
}

// SetCamera copies the camera and derives the view and projection matrices.
// The matrices are cached; per-face work never recomputes them.
func (c *Context) SetCamera(cam Camera) {
	c.camera = cam
	c.view = Mat4LookAt(cam.Position, cam.Target, cam.Up)
	aspect := Scalar(c.cfg.Width) / Scalar(c.cfg.Height)
	c.proj = Mat4Perspective(cam.FOV, aspect, cam.Near, cam.Far)
}

// SetLight copies the light, renormalizing its direction.
func (c *Context) SetLight(l Light) {
	c.light = l
	c.light.Direction = Normalize(l.Direction)
}

// DrawMesh renders a mesh with back-face culling, flat directional shading
// and z-buffered scanline fill.
//
// Triangles touching the near plane are dropped whole rather than clipped;
// large meshes close to the camera will visibly pop. That matches the
// original engine and is deliberate.
func (c *Context) DrawMesh(m *Mesh) {
	if m == nil || len(m.Faces) == 0 {
		return
	}

	model := m.modelMatrix()
	mvp := Mat4Mul(c.proj, Mat4Mul(c.view, model))

	nVerts := len(m.Vertices)
	for fi := range m.Faces {
		f := &m.Faces[fi]
		if int(f.V[0]) >= nVerts || int(f.V[1]) >= nVerts || int(f.V[2]) >= nVerts {
			// The mesh and loader layers guarantee in-range indices; a hit
			// here is a producer bug, not a runtime condition.
			panic(fmt.Sprintf("microgl: face %d references vertex beyond %d", fi, nVerts))
		}

		w0 := model.TransformPoint(m.Vertices[f.V[0]])
		w1 := model.TransformPoint(m.Vertices[f.V[1]])
		w2 := model.TransformPoint(m.Vertices[f.V[2]])

		normal := faceNormal(w0, w1, w2)

		viewDir := Normalize(c.camera.Position.Sub(w0))
		if Dot(normal, viewDir) < 0 {
			continue
		}

		diffuse := -Dot(normal, c.light.Direction)
		if diffuse < 0 {
			diffuse = 0
		}
		brightness := Clamp01(c.light.Ambient + diffuse*c.light.Intensity)

		p0 := c.project(mvp, m.Vertices[f.V[0]])
		p1 := c.project(mvp, m.Vertices[f.V[1]])
		p2 := c.project(mvp, m.Vertices[f.V[2]])

		if p0.Z < 0 || p1.Z < 0 || p2.Z < 0 {
			continue
		}

		c.fillTriangle(p0, p1, p2, brightness, f.Color)
	}
}

// DrawMeshWireframe renders only the projected triangle edges, without
// lighting or depth testing. Mono mode draws through the display; color
// mode writes an unshaded line color into the frame.
func (c *Context) DrawMeshWireframe(m *Mesh) {
	if m == nil || len(m.Faces) == 0 {
		return
	}

	model := m.modelMatrix()
	mvp := Mat4Mul(c.proj, Mat4Mul(c.view, model))

	for fi := range m.Faces {
		f := &m.Faces[fi]

		p0 := c.project(mvp, m.Vertices[f.V[0]])
		p1 := c.project(mvp, m.Vertices[f.V[1]])
		p2 := c.project(mvp, m.Vertices[f.V[2]])

		if p0.Z < 0 || p1.Z < 0 || p2.Z < 0 {
			continue
		}

		c.drawLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), f.Color)
		c.drawLine(int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), f.Color)
		c.drawLine(int(p2.X), int(p2.Y), int(p0.X), int(p0.Y), f.Color)
	}
}

// Present hands the finished frame to the display. Color mode keeps the
// frame in ColorPixels for the caller to transfer.
func (c *Context) Present() error {
	if c.cfg.Mode == OutputColor {
		return nil
	}
	return c.cfg.Display.Present()
}

// project transforms an object-space vertex through the combined MVP matrix
// and maps clip space to screen space, flipping Y. Z is kept as the
// interpolation depth.
func (c *Context) project(mvp Mat4, p Vec3) Vec3 {
	clip := mvp.TransformPoint(p)
	return Vec3{
		X: (clip.X + 1) * 0.5 * Scalar(c.cfg.Width),
		Y: (1 - clip.Y) * 0.5 * Scalar(c.cfg.Height),
		Z: clip.Z,
	}
}

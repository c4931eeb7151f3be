package face

import (
	"math"

	"desktoy/microgl"
)

// Scene owns the meshes and maps face state to 3D transforms each frame:
// the head sways and bounces with the emotion, and the birthday emotion
// swaps in a slowly turning cake.
type Scene struct {
	head *microgl.Mesh
	cake *microgl.Mesh
}

func NewScene() *Scene {
	head := microgl.NewFaceMesh()
	if head == nil {
		head = microgl.NewSphere(0.6, 8)
	}
	return &Scene{
		head: head,
		cake: microgl.NewCake(1.2),
	}
}

// Head exposes the face mesh so a loaded model can replace it.
func (sc *Scene) Head() *microgl.Mesh { return sc.head }

// SetHead swaps the head mesh. A nil mesh keeps the current one.
func (sc *Scene) SetHead(m *microgl.Mesh) {
	if m != nil {
		sc.head = m
	}
}

// Setup points the camera slightly above the face looking down, with soft
// frontal light from above.
func (sc *Scene) Setup(ctx *microgl.Context) {
	ctx.SetCamera(microgl.Camera{
		Position: microgl.V3(0, 0.5, 2),
		Target:   microgl.V3(0, 0, 0),
		Up:       microgl.V3(0, 1, 0),
		FOV:      40,
		Near:     0.1,
		Far:      100,
	})
	ctx.SetLight(microgl.Light{
		Direction: microgl.V3(0, -0.5, -1),
		Intensity: 0.8,
		Ambient:   0.3,
	})
}

// Draw clears the frame and renders the scene for the given state and
// clock. Present stays with the caller.
func (sc *Scene) Draw(ctx *microgl.Context, st *State, now uint64) {
	ctx.Clear()

	if st.Emotion() == Birthday {
		sc.cake.SetRotation(5, cakeYaw(now), 0)
		sc.cake.SetPosition(0, -0.1, 0)
		ctx.DrawMesh(sc.cake)
		return
	}

	yaw := float32(math.Sin(float64(now)*0.0008))*15 + float32(st.LookX)*2
	tilt := float32(math.Sin(float64(now)*0.0012))*5 + st.Bounce*5
	if st.Shake > 0.01 {
		yaw += float32(math.Sin(float64(now)*0.05)) * st.Shake * 4
	}

	sc.head.SetRotation(0, yaw, tilt)
	sc.head.SetPosition(0, st.Bounce*0.1, 0)
	ctx.DrawMesh(sc.head)
}

// cakeYaw turns the cake a full revolution roughly every twelve seconds.
func cakeYaw(now uint64) float32 {
	return float32(now%12000) * (360.0 / 12000.0)
}

// Package microgl is a small software 3D engine for the desktoy firmware.
//
// It renders flat-shaded triangle meshes into a caller-provided monochrome
// pixel Target (ordered-dithered for 1-bit panels) or into an internal
// RGB565 color buffer. The pipeline is fixed:
//
//	Mesh → Model transform → Camera/Projection → Back-face cull →
//	Directional light → Near drop → Scanline fill with depth test → Output.
//
// All buffers are allocated once at context or mesh creation; steady-state
// rendering performs no heap allocation. The engine is single-threaded: one
// goroutine owns a Context and the meshes it draws for the whole frame.
package microgl

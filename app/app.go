// Package app wires the face engine, renderer and tone player into a frame
// step driven by the platform runner.
package app

import (
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"desktoy/face"
	"desktoy/hal"
	"desktoy/internal/buildinfo"
	"desktoy/microgl"
	"desktoy/microgl/obj"
	"desktoy/tone"
)

const splashMs = 1000

// Config adjusts startup behavior.
type Config struct {
	// ModelOBJ optionally replaces the built-in head with an OBJ model.
	ModelOBJ []byte
	// Overlay draws the current emotion name at the bottom of the frame.
	Overlay bool
}

type system struct {
	h      hal.HAL
	ctx    *microgl.Context
	scene  *face.Scene
	state  *face.State
	player *tone.Player

	cfg         Config
	splashUntil uint64
	splashDone  bool
	lastMs      uint64
	lastButton  bool
	frames      uint64
}

// New initializes the toy with default config and returns the frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Overlay: true})
}

// Run drives the frame step in a loop (device entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("fatal: " + err.Error())
			return
		}
		time.Sleep(8 * time.Millisecond)
	}
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	w, ht := h.Display().Size()
	ctx, err := microgl.NewContext(microgl.Config{
		Width:   w,
		Height:  ht,
		Mode:    microgl.OutputMono,
		Shading: microgl.ShadingDithered,
		Display: h.Display(),
	})
	if err != nil {
		return func() error { return err }
	}

	now := h.Time().Millis()
	sys := &system{
		h:           h,
		ctx:         ctx,
		scene:       face.NewScene(),
		state:       face.NewState(int64(now) + 1),
		player:      tone.NewPlayer(h.Buzzer()),
		cfg:         cfg,
		splashUntil: now + splashMs,
		lastMs:      now,
	}
	sys.scene.Setup(ctx)

	if len(cfg.ModelOBJ) > 0 {
		m, err := obj.Load(cfg.ModelOBJ, microgl.RGB(255, 220, 190))
		if err != nil {
			h.Logger().WriteLineString("model: " + err.Error())
		} else {
			h.Logger().WriteLineString("model: " + obj.Stats(m))
			sys.scene.SetHead(m)
		}
	}

	h.Logger().WriteLineString("desktoy " + buildinfo.Short())
	sys.player.PlayEffect(tone.EffectStartup)
	return sys.step
}

func (s *system) step() error {
	now := s.h.Time().Millis()
	delta := now - s.lastMs
	s.lastMs = now

	if now < s.splashUntil {
		s.drawSplash()
		s.player.Update(uint32(delta))
		return s.ctx.Present()
	}
	if !s.splashDone {
		s.splashDone = true
		s.h.Logger().WriteLineString("starting animation")
	}

	pressed := s.h.Button().Pressed()
	if pressed && !s.lastButton {
		if eff := s.state.Next(now); eff != tone.EffectNone {
			s.player.PlayEffect(eff)
		}
		s.h.Logger().WriteLineString("emotion: " + s.state.Emotion().String())
	}
	s.lastButton = pressed

	if eff := s.state.Step(now); eff != tone.EffectNone {
		s.player.PlayEffect(eff)
		s.h.Logger().WriteLineString("emotion: " + s.state.Emotion().String())
	}

	s.scene.Draw(s.ctx, s.state, now)
	if s.cfg.Overlay {
		s.drawOverlay()
	}
	s.player.Update(uint32(delta))

	s.frames++
	if s.frames%600 == 0 {
		s.h.Logger().WriteLineString(fmt.Sprintf("frame %d", s.frames))
	}
	return s.ctx.Present()
}

var overlayWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (s *system) drawSplash() {
	d := s.h.Display()
	d.Clear()
	w, h := d.Size()
	md := &monoDisplayer{d: d}
	text := "DESKTOY"
	_, tw := tinyfont.LineWidth(&proggy.TinySZ8pt7b, text)
	tinyfont.WriteLine(md, &proggy.TinySZ8pt7b, int16(w/2)-int16(tw/2), int16(h/2), text, overlayWhite)
}

func (s *system) drawOverlay() {
	d := s.h.Display()
	_, h := d.Size()
	md := &monoDisplayer{d: d}
	tinyfont.WriteLine(md, &proggy.TinySZ8pt7b, 1, int16(h-2), s.state.Emotion().String(), overlayWhite)
}

// monoDisplayer adapts the 1-bit display to the font renderer: any non-black
// color lights the pixel.
type monoDisplayer struct {
	d hal.Display
}

func (m *monoDisplayer) Size() (int16, int16) {
	w, h := m.d.Size()
	return int16(w), int16(h)
}

func (m *monoDisplayer) SetPixel(x, y int16, c color.RGBA) {
	m.d.SetPixel(int(x), int(y), c.R > 0 || c.G > 0 || c.B > 0)
}

func (m *monoDisplayer) Display() error { return nil }

// Package tone sequences square-wave melodies on the piezo buzzer. The
// player is non-blocking: the frame loop calls Update with the elapsed
// milliseconds and the player advances notes and portamento glides.
package tone

import "desktoy/hal"

// Note frequencies in Hz. Rest is silence.
const (
	Rest uint16 = 0
	C4   uint16 = 262
	CS4  uint16 = 277
	D4   uint16 = 294
	DS4  uint16 = 311
	E4   uint16 = 330
	F4   uint16 = 349
	FS4  uint16 = 370
	G4   uint16 = 392
	GS4  uint16 = 415
	A4   uint16 = 440
	AS4  uint16 = 466
	B4   uint16 = 494
	C5   uint16 = 523
	CS5  uint16 = 554
	D5   uint16 = 587
	DS5  uint16 = 622
	E5   uint16 = 659
	F5   uint16 = 698
	FS5  uint16 = 740
	G5   uint16 = 784
	GS5  uint16 = 831
	A5   uint16 = 880
	AS5  uint16 = 932
	B5   uint16 = 988
	C6   uint16 = 1047
	D6   uint16 = 1175
	E6   uint16 = 1319
	F6   uint16 = 1397
	G6   uint16 = 1568
)

// portamentoSteps is how many Update calls a glide takes to reach its
// target note.
const portamentoSteps = 20

// Step is one melody note: a target frequency, a duration, and whether to
// glide from the previous note instead of jumping.
type Step struct {
	Freq  uint16
	Ms    uint16
	Glide bool
}

// Melody is a Step sequence, optionally looping.
type Melody struct {
	Steps []Step
	Loop  bool
}

// Player drives a buzzer through melodies. It is owned by the frame loop
// and is not safe for concurrent use.
type Player struct {
	out hal.Buzzer

	steps []Step
	loop  bool
	idx   int

	playing     bool
	remainingMs uint32

	current   float32
	target    uint16
	glideStep float32
	glideLeft uint8
}

func NewPlayer(out hal.Buzzer) *Player {
	return &Player{out: out}
}

// Play starts a melody from its first step, replacing whatever was
// playing.
func (p *Player) Play(m Melody) {
	if len(m.Steps) == 0 {
		return
	}
	p.steps = m.Steps
	p.loop = m.Loop
	p.idx = 0
	p.playing = true
	p.startStep(m.Steps[0])
}

// Playing reports whether a melody is still in progress.
func (p *Player) Playing() bool { return p.playing }

// Stop silences the buzzer and abandons the current melody.
func (p *Player) Stop() {
	p.out.SetTone(0)
	p.playing = false
	p.current = 0
	p.target = 0
	p.glideLeft = 0
}

// Update advances playback by deltaMs. Each call moves an active glide one
// portamento step, then note timing decides whether to advance.
func (p *Player) Update(deltaMs uint32) {
	if !p.playing {
		return
	}

	if p.glideLeft > 0 {
		p.current += p.glideStep
		p.setTone(p.current)
		p.glideLeft--
		if p.glideLeft == 0 {
			p.current = float32(p.target)
			p.out.SetTone(p.target)
		}
	}

	if p.remainingMs > deltaMs {
		p.remainingMs -= deltaMs
		return
	}

	p.idx++
	if p.idx >= len(p.steps) {
		if !p.loop {
			p.Stop()
			return
		}
		p.idx = 0
	}
	p.startStep(p.steps[p.idx])
}

func (p *Player) startStep(s Step) {
	p.remainingMs = uint32(s.Ms)
	if s.Glide && p.current > 0 && s.Freq > 0 {
		p.target = s.Freq
		p.glideLeft = portamentoSteps
		p.glideStep = (float32(s.Freq) - p.current) / portamentoSteps
		return
	}
	p.target = s.Freq
	p.current = float32(s.Freq)
	p.glideLeft = 0
	p.out.SetTone(s.Freq)
}

func (p *Player) setTone(f float32) {
	if f < 0 {
		f = 0
	}
	p.out.SetTone(uint16(f))
}

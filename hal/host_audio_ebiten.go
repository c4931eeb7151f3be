//go:build !tinygo && cgo

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const hostSampleRate = 44100

// hostBuzzer synthesizes the piezo's square wave through Ebiten's audio
// package. The audio context is created on the first audible tone so
// headless runs without a sound device stay silent instead of failing.
type hostBuzzer struct {
	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
	failed bool

	freq  uint16
	phase uint32
}

func newHostBuzzer() Buzzer { return &hostBuzzer{} }

func (b *hostBuzzer) SetTone(freqHz uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.freq = freqHz
	if freqHz == 0 || b.failed {
		return nil
	}
	if b.ctx == nil {
		b.ctx = audio.NewContext(hostSampleRate)
		p, err := b.ctx.NewPlayer(&squareWave{b: b})
		if err != nil {
			b.failed = true
			return err
		}
		p.Play()
		b.player = p
	}
	return nil
}

func (b *hostBuzzer) Stop() error { return b.SetTone(0) }

// squareWave is an endless 16-bit little-endian stereo stream: a 50% duty
// square at the buzzer's current frequency, silence at frequency zero.
type squareWave struct {
	b *hostBuzzer
}

func (s *squareWave) Read(p []byte) (int, error) {
	s.b.mu.Lock()
	freq := s.b.freq
	phase := s.b.phase
	s.b.mu.Unlock()

	const amplitude = 6000
	period := uint32(0)
	if freq > 0 {
		period = hostSampleRate / uint32(freq)
	}

	for i := 0; i+3 < len(p); i += 4 {
		var v int16
		if period > 0 {
			if phase < period/2 {
				v = amplitude
			} else {
				v = -amplitude
			}
			phase++
			if phase >= period {
				phase = 0
			}
		}
		p[i+0] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = byte(v)
		p[i+3] = byte(v >> 8)
	}

	s.b.mu.Lock()
	s.b.phase = phase
	s.b.mu.Unlock()
	return len(p) / 4 * 4, nil
}

//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const (
	hostDisplayWidth  = 128
	hostDisplayHeight = 64
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	buz    Buzzer
	btn    *hostButton
	t      *hostTime
}

// New returns a host HAL backed by an in-memory 1-bit framebuffer.
// RunWindow or RunHeadless drive it.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		disp:   newHostDisplay(hostDisplayWidth, hostDisplayHeight),
		buz:    newHostBuzzer(),
		btn:    &hostButton{},
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Buzzer() Buzzer   { return h.buz }
func (h *hostHAL) Button() Button   { return h.btn }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostButton struct {
	mu      sync.Mutex
	pressed bool
}

func (b *hostButton) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pressed
}

func (b *hostButton) set(pressed bool) {
	b.mu.Lock()
	b.pressed = pressed
	b.mu.Unlock()
}

type hostTime struct {
	start time.Time
}

func newHostTime() *hostTime { return &hostTime{start: time.Now()} }

func (t *hostTime) Millis() uint64 {
	return uint64(time.Since(t.start) / time.Millisecond)
}

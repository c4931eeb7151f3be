//go:build !tinygo

package hal

import "sync"

// hostDisplay is an in-memory 1-bit panel using the SSD1306 page layout:
// bit y%8 of byte (y/8)*width + x. Keeping the real layout means the host
// and device paths exercise the same addressing.
type hostDisplay struct {
	mu   sync.Mutex
	w, h int
	buf  []byte
}

func newHostDisplay(w, h int) *hostDisplay {
	return &hostDisplay{w: w, h: h, buf: make([]byte, w*h/8)}
}

func (d *hostDisplay) Size() (int, int) { return d.w, d.h }

func (d *hostDisplay) SetPixel(x, y int, on bool) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	d.mu.Lock()
	idx := (y/8)*d.w + x
	bit := byte(1) << (y % 8)
	if on {
		d.buf[idx] |= bit
	} else {
		d.buf[idx] &^= bit
	}
	d.mu.Unlock()
}

func (d *hostDisplay) Clear() {
	d.mu.Lock()
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.mu.Unlock()
}

func (d *hostDisplay) Present() error { return nil }

// snapshot copies the packed framebuffer so the window can read it without
// holding the lock over a whole draw.
func (d *hostDisplay) snapshot(dst []byte) {
	d.mu.Lock()
	copy(dst, d.buf)
	d.mu.Unlock()
}

func (d *hostDisplay) pixelOn(buf []byte, x, y int) bool {
	return buf[(y/8)*d.w+x]&(1<<(y%8)) != 0
}

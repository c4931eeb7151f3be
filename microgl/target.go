package microgl

// Target is the monochrome display collaborator the engine draws through.
//
// Implementations must ignore out-of-bounds SetPixel calls. Present
// transfers the most recently drawn frame to the physical panel and may
// block until the transfer completes.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, on bool)
	Clear()
	Present() error
}

// FrameRGB565 adapts a caller-provided RGB565 byte framebuffer so a color
// Context frame can be copied out to panels that consume raw byte buffers.
// Stride is in bytes per row.
type FrameRGB565 struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

// CopyFrom writes the packed pixels of a srcW×srcH color-mode frame into
// the buffer. Pixels outside the buffer are skipped.
func (f *FrameRGB565) CopyFrom(pix []uint16, srcW, srcH int) {
	if f == nil || f.Buf == nil || f.Stride <= 0 {
		return
	}
	w, h := srcW, srcH
	if w > f.W {
		w = f.W
	}
	if h > f.H {
		h = f.H
	}
	for y := 0; y < h; y++ {
		row := y * f.Stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if off+1 >= len(f.Buf) {
				continue
			}
			p := pix[y*srcW+x]
			f.Buf[off] = byte(p)
			f.Buf[off+1] = byte(p >> 8)
		}
	}
}

package microgl

import "testing"

func TestFrameRGB565CopyFrom(t *testing.T) {
	ctx := newColorContext(t)
	ctx.Clear()
	ctx.DrawMesh(triAt(t, 0, RGB(255, 0, 0)))

	frame := FrameRGB565{
		Buf:    make([]byte, 64*64*2),
		Stride: 64 * 2,
		W:      64,
		H:      64,
	}
	frame.CopyFrom(ctx.ColorPixels(), ctx.Width(), ctx.Height())

	center := (32*64 + 32) * 2
	got := uint16(frame.Buf[center]) | uint16(frame.Buf[center+1])<<8
	if got != ctx.ColorPixels()[32*64+32] {
		t.Fatalf("copied pixel %04x, want %04x", got, ctx.ColorPixels()[32*64+32])
	}
	if got == 0 {
		t.Fatalf("center pixel empty after copy")
	}
}

func TestFrameRGB565CopyClipsToBuffer(t *testing.T) {
	// Destination smaller than the source frame: the copy must clip, not
	// write past the buffer.
	frame := FrameRGB565{
		Buf:    make([]byte, 16*8*2),
		Stride: 16 * 2,
		W:      16,
		H:      8,
	}
	src := make([]uint16, 64*64)
	for i := range src {
		src[i] = 0xFFFF
	}
	frame.CopyFrom(src, 64, 64)

	for i, b := range frame.Buf {
		if b != 0xFF {
			t.Fatalf("byte %d not copied: %02x", i, b)
		}
	}
}

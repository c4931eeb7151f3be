//go:build !tinygo && cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"desktoy/internal/buildinfo"
)

const windowScale = 4

// RunWindow opens a desktop window showing the emulated panel and forwards
// the space bar as the button. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Desktoy (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.w*windowScale, h.disp.h*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.btn.set(ebiten.IsKeyPressed(ebiten.KeySpace))
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, d.w, d.h))
		g.scratch = make([]byte, len(d.buf))
		g.fbImg = ebiten.NewImage(d.w, d.h)
	}

	d.snapshot(g.scratch)

	dst := g.img.Pix
	for y := 0; y < d.h; y++ {
		for x := 0; x < d.w; x++ {
			var v byte
			if d.pixelOn(g.scratch, x, y) {
				v = 0xFF
			}
			j := (y*d.w + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.w, g.h.disp.h
}

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds

// fpsWidget shows the measured FPS and TPS in the top-right corner. The
// text is re-rendered about twice a second.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float32
	label   string
	dirty   bool
}

func (w *fpsWidget) update(dt float32) {
	w.elapsed += dt
	if w.elapsed < fpsRefresh && w.label != "" {
		return
	}
	w.elapsed = 0
	w.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	w.dirty = true
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.label == "" {
		return
	}
	if w.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
		w.dirty = true
	}
	if w.dirty {
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, w.label)
		w.dirty = false
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(screen.Bounds().Dx()-w.img.Bounds().Dx()-8), 8)
	screen.DrawImage(w.img, &op)
}

package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hintText         = "F11: Fullscreen | ESC: Exit"
	hintSize         = 16
	hintX, hintY     = 10, 10
	defaultHintHold  = 4.0 // seconds
	hintFadeDuration = 1.0 // seconds
)

// hintGray is the overlay color, (100, 100, 100) in 8-bit terms.
const hintGray = 100.0 / 255

// hintOverlay draws the key-binding hint. It holds at full opacity, then
// fades out; show brings it back.
type hintOverlay struct {
	face *text.GoTextFace

	hold      float32 // configured hold; negative never fades
	remaining float32
	fade      *gween.Tween
	alpha     float64
}

func newHintOverlay(hold float64) (*hintOverlay, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse hint font: %w", err)
	}
	if hold == 0 {
		hold = defaultHintHold
	}
	h := &hintOverlay{
		face: &text.GoTextFace{Source: source, Size: hintSize},
		hold: float32(hold),
	}
	h.show()
	return h, nil
}

// show makes the hint fully visible and restarts the hold timer.
func (h *hintOverlay) show() {
	h.alpha = 1
	h.remaining = h.hold
	h.fade = nil
}

func (h *hintOverlay) visible() bool { return h.alpha > 0 }

func (h *hintOverlay) update(dt float32) {
	if h.hold < 0 || h.alpha == 0 {
		return
	}
	if h.fade == nil {
		h.remaining -= dt
		if h.remaining > 0 {
			return
		}
		h.fade = gween.New(1, 0, hintFadeDuration, ease.OutQuad)
	}
	val, done := h.fade.Update(dt)
	h.alpha = float64(val)
	if done {
		h.alpha = 0
		h.fade = nil
	}
}

func (h *hintOverlay) draw(screen *ebiten.Image) {
	if !h.visible() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(hintX, hintY)
	op.ColorScale.Scale(hintGray, hintGray, hintGray, 1)
	op.ColorScale.ScaleAlpha(float32(h.alpha))
	text.Draw(screen, hintText, h.face, op)
}

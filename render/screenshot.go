package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG is written to ScreenshotDir with a
// timestamp and frame number in its name.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame once for every queued label.
// Failures are logged and the queue is dropped; they never stop the frame.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lizard] screenshot: mkdir %s: %v\n", a.ScreenshotDir, err)
		return
	}

	img := captureNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshotQueue {
		name := fmt.Sprintf("%s_f%05d_%s.png", stamp, a.frames, sanitizeLabel(label))
		if err := writePNG(filepath.Join(a.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lizard] screenshot: %v\n", err)
		}
	}
}

// captureNRGBA reads the screen back and converts premultiplied RGBA to
// straight-alpha NRGBA.
func captureNRGBA(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		pix[i] = uint8(min(int(pix[i])*255/int(a), 255))
		pix[i+1] = uint8(min(int(pix[i+1])*255/int(a), 255))
		pix[i+2] = uint8(min(int(pix[i+2])*255/int(a), 255))
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

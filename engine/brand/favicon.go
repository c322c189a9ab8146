package brand

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/glow"
	"github.com/1siamBot/brandgen/engine/shapes"
)

// FaviconChevron fills more of the tile than the large icons do.
func FaviconChevron(size int) shapes.Chevron {
	s := float64(size)
	w := s * 0.58
	return shapes.Chevron{CX: s * 0.44, CY: s * 0.50, W: w, H: s * 0.62, Notch: w * 0.35}
}

// FaviconCursor is the pixel block painted right of the favicon glyph.
func FaviconCursor(size int) image.Rectangle {
	chev := FaviconChevron(size)
	x, y := int(chev.Right()+2), int(chev.CY-3)
	return image.Rect(x, y, x+5, y+9)
}

// Favicon renders the browser tab icon. At this size wide blurs smear the
// glyph into the background, so the glow is three tight passes and the
// cursor is painted directly, replacing whatever is under it.
func Favicon(t Theme, size int) *image.NRGBA {
	img := canvas.New(size, t.Background)

	chev := FaviconChevron(size)
	img = glow.Composite(img, chev, []glow.Pass{
		glow.Tint(3, 50, t.Neon),
		glow.Tint(1, 130, t.Neon),
		glow.Tint(0, 255, t.Neon),
	})

	canvas.FillRect(img, FaviconCursor(size), t.Neon.NRGBA())
	return img
}

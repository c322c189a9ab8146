package brand

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/glow"
	"github.com/1siamBot/brandgen/engine/layers"
	"github.com/1siamBot/brandgen/engine/shapes"
)

// safeZone is the fraction of the adaptive icon that survives launcher masks.
const safeZone = 0.66

// AdaptiveChevron keeps the glyph inside the safe zone.
func AdaptiveChevron(size int) shapes.Chevron {
	s := float64(size)
	safe := s * safeZone
	w := safe * 0.52
	return shapes.Chevron{CX: s * 0.46, CY: s * 0.50, W: w, H: safe * 0.55, Notch: w * 0.38}
}

func adaptiveChevronGlow(t Theme) []glow.Pass {
	return []glow.Pass{
		glow.Tint(70, 10, t.NeonOuter),
		glow.Tint(45, 18, t.NeonOuter),
		glow.Tint(30, 32, canvas.Lerp(t.NeonOuter, t.Neon, 0.4)),
		glow.Tint(18, 55, t.Neon),
		glow.Tint(8, 95, t.Neon),
		glow.Tint(3, 155, t.Neon),
		glow.Tint(0, 255, t.Neon),
	}
}

// AdaptiveIcon renders the Android foreground. It carries no brackets or
// vignette: the launcher crops the edges.
func AdaptiveIcon(t Theme, size int) *image.NRGBA {
	s := float64(size)
	safe := s * safeZone
	img := canvas.New(size, t.Background)

	img = canvas.Composite(img, layers.RadialGradient(size, 0.45, 12, 25))
	img = canvas.Composite(img, layers.HexGrid(size, 22, t.Neon, 4))

	chev := AdaptiveChevron(size)
	img = glow.Composite(img, chev, adaptiveChevronGlow(t))
	img = canvas.Composite(img, layers.ChevronHighlight(size, chev, t.White))

	cursor := shapes.CursorBeside(chev, s*0.02, safe*0.055, safe*0.155, 3)
	img = glow.Composite(img, cursor, cursorGlow(t, 18, 8))

	return canvas.Composite(img, layers.Scanlines(size, 3, 10))
}

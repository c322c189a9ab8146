package brand

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/glow"
	"github.com/1siamBot/brandgen/engine/layers"
	"github.com/1siamBot/brandgen/engine/shapes"
)

// IconChevron is the app icon's glyph geometry for a canvas of size.
func IconChevron(size int) shapes.Chevron {
	s := float64(size)
	w := s * 0.46
	return shapes.Chevron{CX: s * 0.44, CY: s * 0.50, W: w, H: s * 0.48, Notch: w * 0.38}
}

// Teal outer passes shift toward green as the blur tightens.
func iconChevronGlow(t Theme) []glow.Pass {
	return []glow.Pass{
		glow.Tint(90, 10, t.NeonOuter),
		glow.Tint(60, 18, t.NeonOuter),
		glow.Tint(40, 30, canvas.Lerp(t.NeonOuter, t.Neon, 0.3)),
		glow.Tint(25, 50, canvas.Lerp(t.NeonOuter, t.Neon, 0.6)),
		glow.Tint(12, 85, t.Neon),
		glow.Tint(4, 150, t.Neon),
		glow.Tint(0, 255, t.Neon),
	}
}

func cursorGlow(t Theme, outerBlur, midBlur float64) []glow.Pass {
	return []glow.Pass{
		glow.Tint(outerBlur, 20, t.NeonOuter),
		glow.Tint(midBlur, 55, t.Neon),
		glow.Tint(3, 125, t.Neon),
		glow.Tint(0, 230, t.Neon),
	}
}

// Icon renders the square app icon.
func Icon(t Theme, size int) *image.NRGBA {
	s := float64(size)
	img := canvas.New(size, t.Background)

	img = canvas.Composite(img, layers.RadialGradient(size, 0.55, 15, 30))
	img = canvas.Composite(img, layers.HexGrid(size, 28, t.Neon, 5))
	img = canvas.Composite(img, layers.HUDBrackets(size, int(s*0.08), int(s*0.12), 2, t.Neon, 22))

	chev := IconChevron(size)
	img = glow.Composite(img, chev, iconChevronGlow(t))
	img = canvas.Composite(img, layers.ChevronHighlight(size, chev, t.White))

	cursor := shapes.CursorBeside(chev, s*0.025, s*0.06, s*0.14, 4)
	img = glow.Composite(img, cursor, cursorGlow(t, 22, 10))

	img = canvas.Composite(img, layers.Scanlines(size, 3, 12))
	return layers.ApplyVignette(img, 0.45, t.Shade)
}

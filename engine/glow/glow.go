// Package glow simulates neon bloom by stacking blurred copies of a shape.
package glow

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/shapes"
	"github.com/fogleman/gg"
)

// Pass is one step of the falloff. Tables run outermost first: widest blur,
// lowest opacity.
type Pass struct {
	Blur    float64
	Opacity int
	Color   canvas.Color

	// Own draws multi-colour shapes in their own colours instead of Color.
	Own bool
}

// Tint is a pass drawn in c.
func Tint(blur float64, opacity int, c canvas.Color) Pass {
	return Pass{Blur: blur, Opacity: opacity, Color: c}
}

// Own is a pass drawn in the shape's own colours.
func Own(blur float64, opacity int) Pass {
	return Pass{Blur: blur, Opacity: opacity, Own: true}
}

// Composite renders shape once per pass on a fresh transparent layer, blurs
// it when the pass asks for it and composites it over base. Each pass lands
// on top of the previous ones. An empty table returns base untouched.
func Composite(base *image.NRGBA, shape shapes.Shape, passes []Pass) *image.NRGBA {
	size := base.Bounds().Size()
	for _, p := range passes {
		dc := gg.NewContext(size.X, size.Y)
		shape.Draw(dc, shapes.Paint{
			Color: p.Color,
			Alpha: canvas.ClampAlpha(p.Opacity),
			Own:   p.Own,
		})
		var layer image.Image = dc.Image()
		if p.Blur > 0 {
			layer = canvas.Blur(layer, p.Blur)
		}
		base = canvas.Composite(base, layer)
	}
	return base
}

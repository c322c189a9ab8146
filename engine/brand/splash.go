package brand

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/glow"
	"github.com/1siamBot/brandgen/engine/layers"
	"github.com/1siamBot/brandgen/engine/shapes"
	"golang.org/x/image/font"
)

// FaceSource builds font faces at a pixel size.
type FaceSource interface {
	Face(size float64) (font.Face, error)
}

// Outer passes share one teal; inner passes switch to each run's colour.
func splashTextGlow(t Theme) []glow.Pass {
	return []glow.Pass{
		glow.Tint(50, 12, t.NeonOuter),
		glow.Tint(30, 22, t.NeonOuter),
		glow.Tint(15, 45, t.Neon),
		glow.Own(8, 80),
		glow.Own(3, 140),
		glow.Own(0, 255),
	}
}

// SplashLabel lays the wordmark out centred horizontally at 46.5% height.
func SplashLabel(t Theme, size int, face font.Face) shapes.Text {
	s := float64(size)
	label := shapes.Text{Face: face, Y: s * 0.465, Runs: t.Label}
	label.X = (s - label.Width()) / 2
	return label
}

// Splash renders the launch screen: digital rain, a framed "$ git gud"
// wordmark and a cursor block. rng drives the rain; pass a freshly seeded
// source for reproducible output.
func Splash(t Theme, size int, faces FaceSource, rng *rand.Rand) (*image.NRGBA, error) {
	s := float64(size)
	fontSize := float64(int(s * 0.085))
	face, err := faces.Face(fontSize)
	if err != nil {
		return nil, fmt.Errorf("splash font: %w", err)
	}
	defer face.Close()

	img := canvas.New(size, t.Background)
	img = canvas.Composite(img, layers.RadialGradient(size, 0.5, 10, 25))
	img = canvas.Composite(img, layers.Rain(size, rng, t.Neon, layers.DefaultRain))
	img = canvas.Composite(img, layers.HUDBrackets(size, int(s*0.18), int(s*0.08), 1, t.Neon, 18))
	img = canvas.Composite(img, layers.AccentLines(size, int(s*0.22),
		[]int{int(s * 0.42), int(s * 0.58)}, t.Neon, 12))

	label := SplashLabel(t, size, face)
	img = glow.Composite(img, label, splashTextGlow(t))

	cursor := shapes.Rect{
		X: label.X + label.Width() + 6,
		Y: label.Y + fontSize*0.1,
		W: fontSize * 0.48,
		H: fontSize * 0.78,
	}
	img = glow.Composite(img, cursor, []glow.Pass{
		glow.Tint(12, 25, t.Neon),
		glow.Tint(5, 70, t.Neon),
		glow.Tint(0, 150, t.Neon),
	})

	img = canvas.Composite(img, layers.Scanlines(size, 3, 15))
	return layers.ApplyVignette(img, 0.6, t.Shade), nil
}

// Package brand composes the GitGud brand assets: app icon, splash screen,
// adaptive icon and favicon. Each composer is a pure function of a Theme and
// a canvas size.
package brand

import (
	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/shapes"
)

// Theme is the brand palette and the few non-geometric constants the
// composers share. Composers never modify it.
type Theme struct {
	Neon       canvas.Color // core brand green
	NeonOuter  canvas.Color // teal-shifted outer glow
	Background canvas.Color
	White      canvas.Color
	Shade      canvas.Color // vignette tint

	// Label is the splash wordmark, one run per colour.
	Label []shapes.Run

	// RainSeed seeds the splash particle field.
	RainSeed int64
}

// DefaultTheme is the neon terminal look.
func DefaultTheme() Theme {
	neon := canvas.RGB(57, 255, 20) // #39FF14
	white := canvas.RGB(255, 255, 255)
	return Theme{
		Neon:       neon,
		NeonOuter:  canvas.RGB(30, 255, 120),
		Background: canvas.RGB(15, 15, 26), // #0F0F1A
		White:      white,
		Shade:      canvas.RGB(5, 5, 18),
		Label: []shapes.Run{
			{Text: "$ ", Color: neon},
			{Text: "git", Color: white},
			{Text: " gud", Color: neon},
		},
		RainSeed: 77,
	}
}

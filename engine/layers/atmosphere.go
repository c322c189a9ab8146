// Package layers generates the transparent full-canvas layers the brand
// composers stack: background atmosphere, HUD framing and CRT finishing.
// Every generator is pure and takes its geometry relative to size.
package layers

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/fogleman/gg"
)

// gradientRingStep is the spacing of the gradient's concentric rings.
const gradientRingStep = 4

// RadialGradient brightens the centre with rings every 4px inside
// radiusFrac*size. A pixel takes the colour of the smallest ring containing
// it, (b, b, b+3) with b = peak*(1-r/maxR), at a constant alpha.
func RadialGradient(size int, radiusFrac float64, peak, alpha int) *image.NRGBA {
	img := canvas.NewLayer(size)
	maxR := int(float64(size) * radiusFrac)
	if maxR <= 0 {
		return img
	}
	cx, cy := size/2, size/2
	innermost := maxR - gradientRingStep*((maxR-1)/gradientRingStep)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > float64(maxR) {
				continue
			}
			r := innermost
			if d > float64(innermost) {
				r = maxR - gradientRingStep*int((float64(maxR)-d)/gradientRingStep)
			}
			b := int(float64(peak) * (1 - float64(r)/float64(maxR)))
			img.SetNRGBA(x, y, color.NRGBA{
				canvas.ClampAlpha(b), canvas.ClampAlpha(b), canvas.ClampAlpha(b + 3),
				canvas.ClampAlpha(alpha),
			})
		}
	}
	return img
}

// hexInset shrinks each hexagon so neighbours do not share edges.
const hexInset = 0.85

// HexGridCells is the lattice drawn for a canvas: enough rows and columns to
// cover it plus two of each for boundary overdraw.
func HexGridCells(size int, cellR float64) (rows, cols int) {
	rowH := cellR * math.Sqrt(3)
	colW := cellR * 1.5
	rows = int(math.Ceil(float64(size)/rowH)) + 2
	cols = int(math.Ceil(float64(size)/colW)) + 2
	return rows, cols
}

// HexGrid outlines a flat-top hexagonal mesh. Odd columns drop half a row.
func HexGrid(size int, cellR float64, c canvas.Color, alpha int) image.Image {
	dc := gg.NewContext(size, size)
	rowH := cellR * math.Sqrt(3)
	colW := cellR * 1.5
	rows, cols := HexGridCells(size, cellR)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			hx := float64(col) * colW
			hy := float64(row)*rowH + float64(col%2)*rowH/2
			for i := 0; i < 6; i++ {
				a := math.Pi / 3 * float64(i)
				px := hx + cellR*hexInset*math.Cos(a)
				py := hy + cellR*hexInset*math.Sin(a)
				if i == 0 {
					dc.MoveTo(px, py)
				} else {
					dc.LineTo(px, py)
				}
			}
			dc.ClosePath()
		}
	}
	dc.SetLineWidth(1)
	dc.SetColor(c.Alpha(alpha))
	dc.Stroke()
	return dc.Image()
}

// RainParams shapes the digital rain field.
type RainParams struct {
	Columns int
	MinLen  int
	MaxLen  int // inclusive
	Step    float64

	// A dot j steps down a column has alpha max(MinAlpha, HeadAlpha-j*Fade).
	HeadAlpha int
	Fade      int
	MinAlpha  int

	// Radii is sampled uniformly per dot; repeats weight the draw.
	Radii []float64
	Blur  float64
}

// DefaultRain is the splash screen's particle field.
var DefaultRain = RainParams{
	Columns:   110,
	MinLen:    3,
	MaxLen:    7,
	Step:      14,
	HeadAlpha: 14,
	Fade:      3,
	MinAlpha:  3,
	Radii:     []float64{1, 1, 2},
	Blur:      1,
}

// Rain scatters falling streaks of fading dots. All randomness comes from
// rng, so a seeded source reproduces the field exactly.
func Rain(size int, rng *rand.Rand, c canvas.Color, p RainParams) image.Image {
	dc := gg.NewContext(size, size)
	for i := 0; i < p.Columns; i++ {
		x := float64(rng.Intn(size + 1))
		startY := float64(rng.Intn(size + 1))
		length := p.MinLen + rng.Intn(p.MaxLen-p.MinLen+1)
		for j := 0; j < length; j++ {
			y := startY + float64(j)*p.Step
			if y < 0 || y >= float64(size) {
				continue
			}
			a := p.HeadAlpha - j*p.Fade
			if a < p.MinAlpha {
				a = p.MinAlpha
			}
			r := p.Radii[rng.Intn(len(p.Radii))]
			dc.DrawCircle(x, y, r)
			dc.SetColor(c.Alpha(a))
			dc.Fill()
		}
	}
	if p.Blur > 0 {
		return canvas.Blur(dc.Image(), p.Blur)
	}
	return dc.Image()
}

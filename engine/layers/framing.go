package layers

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/1siamBot/brandgen/engine/shapes"
	"github.com/fogleman/gg"
)

// HUDBrackets draws an L-shaped targeting bracket in each corner, inset by
// margin, with arms of the given length.
func HUDBrackets(size, margin, length int, thickness float64, c canvas.Color, alpha int) image.Image {
	dc := gg.NewContext(size, size)
	m, ln := float64(margin), float64(length)
	s := float64(size)

	// corner point, horizontal arm end, vertical arm end
	corners := [4][3]gg.Point{
		{{X: m, Y: m}, {X: m + ln, Y: m}, {X: m, Y: m + ln}},
		{{X: s - m, Y: m}, {X: s - m - ln, Y: m}, {X: s - m, Y: m + ln}},
		{{X: m, Y: s - m}, {X: m + ln, Y: s - m}, {X: m, Y: s - m - ln}},
		{{X: s - m, Y: s - m}, {X: s - m - ln, Y: s - m}, {X: s - m, Y: s - m - ln}},
	}
	for _, k := range corners {
		dc.MoveTo(k[1].X, k[1].Y)
		dc.LineTo(k[0].X, k[0].Y)
		dc.LineTo(k[2].X, k[2].Y)
	}
	dc.SetLineCapSquare()
	dc.SetLineJoinBevel()
	dc.SetLineWidth(thickness)
	dc.SetColor(c.Alpha(alpha))
	dc.Stroke()
	return dc.Image()
}

// AccentLines draws 1px horizontal rules at each y, margin pixels in from
// both sides.
func AccentLines(size, margin int, ys []int, c canvas.Color, alpha int) *image.NRGBA {
	img := canvas.NewLayer(size)
	for _, y := range ys {
		canvas.HLine(img, margin, size-margin, y, c.Alpha(alpha))
	}
	return img
}

// Scanlines darkens every spacing-th row with a 1px black line.
func Scanlines(size, spacing, alpha int) *image.NRGBA {
	img := canvas.NewLayer(size)
	black := canvas.Color{}.Alpha(alpha)
	for y := 0; y < size; y += spacing {
		canvas.HLine(img, 0, size, y, black)
	}
	return img
}

// ChevronHighlight is a soft specular streak along the chevron's upper arm.
func ChevronHighlight(size int, chev shapes.Chevron, c canvas.Color) image.Image {
	dc := gg.NewContext(size, size)
	streak := shapes.Line{
		X1:    chev.CX - chev.W/2 + chev.W*0.08,
		Y1:    chev.CY - chev.H/2 + chev.H*0.06,
		X2:    chev.CX + chev.W/2 - chev.W*0.05,
		Y2:    chev.CY - chev.H*0.02,
		Width: 3,
	}
	streak.Draw(dc, shapes.Paint{Color: c, Alpha: 35})
	return canvas.Blur(dc.Image(), 4)
}

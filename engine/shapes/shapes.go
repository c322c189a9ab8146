// Package shapes defines the drawable motifs the glow compositor renders:
// the chevron glyph, cursor blocks, strokes and multi-colour text.
//
// Shapes are plain values. The compositor hands each one a fresh layer and
// a Paint per pass, so nothing is captured between passes.
package shapes

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/fogleman/gg"
)

// Paint is the fill a shape uses for one pass. When Own is set, shapes that
// carry their own colours (Text) use them and ignore Color.
type Paint struct {
	Color canvas.Color
	Alpha uint8
	Own   bool
}

func (p Paint) nrgba(own canvas.Color) color.NRGBA {
	c := p.Color
	if p.Own {
		c = own
	}
	return color.NRGBA{c.R, c.G, c.B, p.Alpha}
}

// Shape draws itself onto a layer context.
type Shape interface {
	Draw(dc *gg.Context, p Paint)
}

// Chevron is the ">" glyph: a concave quadrilateral whose inner notch point
// sits Notch pixels right of the back edge.
type Chevron struct {
	CX, CY float64
	W, H   float64
	Notch  float64
}

// Points returns top-left, right tip, bottom-left and inner notch.
func (c Chevron) Points() [4]gg.Point {
	return [4]gg.Point{
		{X: c.CX - c.W/2, Y: c.CY - c.H/2},
		{X: c.CX + c.W/2, Y: c.CY},
		{X: c.CX - c.W/2, Y: c.CY + c.H/2},
		{X: c.CX - c.W/2 + c.Notch, Y: c.CY},
	}
}

// Bounds is the integer box covering the glyph.
func (c Chevron) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(c.CX-c.W/2)), int(math.Floor(c.CY-c.H/2)),
		int(math.Ceil(c.CX+c.W/2)), int(math.Ceil(c.CY+c.H/2)),
	)
}

// Right is the x coordinate of the tip.
func (c Chevron) Right() float64 {
	return c.CX + c.W/2
}

func (c Chevron) Draw(dc *gg.Context, p Paint) {
	pts := c.Points()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	dc.SetColor(p.nrgba(p.Color))
	dc.Fill()
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Draw(dc *gg.Context, p Paint) {
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.SetColor(p.nrgba(p.Color))
	dc.Fill()
}

// RoundedRect is the terminal cursor block.
type RoundedRect struct {
	X, Y, W, H float64
	Radius     float64
}

func (r RoundedRect) Draw(dc *gg.Context, p Paint) {
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.Radius)
	dc.SetColor(p.nrgba(p.Color))
	dc.Fill()
}

// Line is a butt-capped stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

func (l Line) Draw(dc *gg.Context, p Paint) {
	dc.SetLineCapButt()
	dc.SetLineWidth(l.Width)
	dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	dc.SetColor(p.nrgba(p.Color))
	dc.Stroke()
}

// CursorBeside places a cursor block gap pixels right of the chevron tip,
// raised so that 35% of its height sits above the chevron's centre line.
func CursorBeside(c Chevron, gap, w, h, radius float64) RoundedRect {
	return RoundedRect{
		X:      c.Right() + gap,
		Y:      c.CY - h*0.35,
		W:      w,
		H:      h,
		Radius: radius,
	}
}

package shapes

import (
	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Run is one coloured span of a label.
type Run struct {
	Text  string
	Color canvas.Color
}

// Text lays runs out left to right on one line. X, Y is the top-left of the
// line box: Y is the ascender line, not the baseline.
type Text struct {
	Face font.Face
	X, Y float64
	Runs []Run
}

// Advance is the horizontal advance of s in face, in pixels.
func Advance(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// Width is the summed advance of every run.
func (t Text) Width() float64 {
	w := 0.0
	for _, r := range t.Runs {
		w += Advance(t.Face, r.Text)
	}
	return w
}

func (t Text) Draw(dc *gg.Context, p Paint) {
	dc.SetFontFace(t.Face)
	baseline := t.Y + float64(t.Face.Metrics().Ascent)/64
	x := t.X
	for _, r := range t.Runs {
		dc.SetColor(p.nrgba(r.Color))
		dc.DrawString(r.Text, x, baseline)
		x += Advance(t.Face, r.Text)
	}
}

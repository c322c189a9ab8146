package layers

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// VignetteMask is the un-inverted mask: white inside an ellipse inset 5% from
// each edge, blurred by a third of the width.
func VignetteMask(size int) *image.NRGBA {
	mask := image.NewGray(image.Rect(0, 0, size, size))
	m := float32(int(float64(size) * 0.05))
	fillEllipse(mask, m, m, float32(size)-m, float32(size)-m)
	return canvas.Blur(mask, float64(size/3))
}

// Vignette returns a tint-coloured overlay whose alpha is the inverted mask
// scaled by strength, so edges darken and the centre stays clear.
func Vignette(size int, strength float64, tint canvas.Color) *image.NRGBA {
	inv := imaging.Invert(VignetteMask(size))
	out := canvas.NewLayer(size)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = tint.R
		out.Pix[i+1] = tint.G
		out.Pix[i+2] = tint.B
		out.Pix[i+3] = canvas.Clamp8(float64(inv.Pix[i]) * strength)
	}
	return out
}

// ApplyVignette composites a vignette over img.
func ApplyVignette(img *image.NRGBA, strength float64, tint canvas.Color) *image.NRGBA {
	return canvas.Composite(img, Vignette(img.Bounds().Dx(), strength, tint))
}

func fillEllipse(dst *image.Gray, x0, y0, x1, y1 float32) {
	b := dst.Bounds()
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*kappa, ry*kappa

	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(cx+rx, cy)
	r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	r.ClosePath()
	r.Draw(dst, b, image.White, image.Point{})
}

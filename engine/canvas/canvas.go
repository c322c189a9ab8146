// Package canvas holds the pixel surfaces the brand pipeline composites onto:
// an opaque base canvas, transparent layers, blur and the final flatten.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// New returns an opaque size x size canvas filled with bg.
func New(size int, bg Color) *image.NRGBA {
	return imaging.New(size, size, bg.NRGBA())
}

// NewLayer returns a fully transparent size x size layer.
func NewLayer(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// Composite alpha-composites layer over base and returns the result. base is
// not modified. layer is aligned to base's origin.
func Composite(base *image.NRGBA, layer image.Image) *image.NRGBA {
	return imaging.Overlay(base, layer, base.Bounds().Min, 1.0)
}

// Flatten drops the alpha channel. Colour channels are copied as stored, so an
// opaque canvas flattens to identical RGB. The result reports Opaque() and
// encodes as an RGB PNG.
func Flatten(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := img.PixOffset(b.Min.X, y)
		di := out.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Pix[di+0] = img.Pix[si+0]
			out.Pix[di+1] = img.Pix[si+1]
			out.Pix[di+2] = img.Pix[si+2]
			out.Pix[di+3] = 255
			si += 4
			di += 4
		}
	}
	return out
}

// Fill overwrites every pixel of img with c.
func Fill(img draw.Image, c color.Color) {
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// HLine writes a 1px horizontal run from x0 (inclusive) to x1 (exclusive).
// Pixels are replaced, not blended.
func HLine(img *image.NRGBA, x0, x1, y int, c color.NRGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	for x := x0; x < x1 && x < b.Max.X; x++ {
		img.SetNRGBA(x, y, c)
	}
}

// FillRect replaces the pixels of r, clipped to img, with c.
func FillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		HLine(img, r.Min.X, r.Max.X, y, c)
	}
}

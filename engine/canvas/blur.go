package canvas

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Radii above directBlurMax are blurred on a downsampled copy. A wide
// Gaussian has no high frequencies left to lose, and the direct kernel grows
// to 6*sigma taps per pixel.
const (
	directBlurMax = 12.0
	reducedSigma  = 6.0
)

// Blur applies a Gaussian blur with standard deviation sigma. sigma <= 0
// returns an unblurred copy.
func Blur(img image.Image, sigma float64) *image.NRGBA {
	if sigma <= directBlurMax {
		return imaging.Blur(img, sigma)
	}

	b := img.Bounds()
	factor := math.Floor(sigma / reducedSigma)
	sw := int(math.Ceil(float64(b.Dx()) / factor))
	sh := int(math.Ceil(float64(b.Dy()) / factor))

	small := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	xdraw.BiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)
	small = imaging.Blur(small, sigma/factor)

	out := image.NewNRGBA(b)
	xdraw.BiLinear.Scale(out, b, small, small.Bounds(), xdraw.Src, nil)
	return out
}

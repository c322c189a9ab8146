package brand

import (
	"image"

	"github.com/1siamBot/brandgen/engine/canvas"
	xdraw "golang.org/x/image/draw"
)

// ContactSheet lays images out in one row of cell x cell tiles separated by
// gap pixels of background. Each image is scaled to fill its tile.
func ContactSheet(images []image.Image, cell, gap int, bg canvas.Color) *image.RGBA {
	w := gap + len(images)*(cell+gap)
	h := cell + 2*gap
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	canvas.Fill(sheet, bg.NRGBA())

	for i, img := range images {
		x := gap + i*(cell+gap)
		dst := image.Rect(x, gap, x+cell, gap+cell)
		xdraw.CatmullRom.Scale(sheet, dst, img, img.Bounds(), xdraw.Over, nil)
	}
	return sheet
}

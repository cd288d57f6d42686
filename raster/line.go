package raster

import (
	"image"
	"image/color"
	"math"
)

// drawLine draws a one pixel wide line from (x1, y1) to (x2, y2) with a DDA
// walk, compositing col over the pixels of img inside clip. Only the part of
// the segment inside clip is walked, so far off-canvas endpoints cost nothing.
func drawLine(img *image.RGBA, clip image.Rectangle, x1, y1, x2, y2 float64, col color.NRGBA) {
	x1, y1, x2, y2, ok := clipSegment(clip, x1, y1, x2, y2)
	if !ok {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	xInc := dx / steps
	yInc := dy / steps

	x := x1
	y := y1
	for i := 0; i <= int(steps); i++ {
		p := image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
		if p.In(clip) {
			blendPixel(img, p.X, p.Y, col)
		}
		x += xInc
		y += yInc
	}
}

// blendPixel composites col over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, col color.NRGBA) {
	offset := img.PixOffset(x, y)
	if col.A == 0xff {
		img.Pix[offset] = col.R
		img.Pix[offset+1] = col.G
		img.Pix[offset+2] = col.B
		img.Pix[offset+3] = col.A
		return
	}
	a := uint32(col.A)
	inv := 0xff - a
	pix := img.Pix[offset : offset+4 : offset+4]
	pix[0] = uint8((uint32(col.R)*a + uint32(pix[0])*inv) / 0xff)
	pix[1] = uint8((uint32(col.G)*a + uint32(pix[1])*inv) / 0xff)
	pix[2] = uint8((uint32(col.B)*a + uint32(pix[2])*inv) / 0xff)
	pix[3] = uint8(a + uint32(pix[3])*inv/0xff)
}

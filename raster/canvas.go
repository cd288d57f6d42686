// Package raster draws projected polygons into images.
//
// [Canvas] implements graphics3d.Canvas over an *image.RGBA: polygons are
// filled with the anti-aliasing rasterizer from golang.org/x/image/vector
// and outlines are stroked either as hairlines or as filled quads. [Recorder]
// implements the same interface by recording every call.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/fulldump/chart3d/graphics3d"
)

type state struct {
	tx, ty float64
	clip   image.Rectangle
}

// Canvas is a graphics3d.Canvas backed by an RGBA image.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dst   *image.RGBA
	cur   state
	stack []state
	z     *vector.Rasterizer

	xy, clipped []float64 // FillPolygon scratch
}

// New creates a canvas drawing into dst.
func New(dst *image.RGBA) *Canvas {
	return &Canvas{
		dst: dst,
		cur: state{clip: dst.Bounds()},
		z:   vector.NewRasterizer(0, 0),
	}
}

// NewRGBA creates a canvas over a new transparent image of the given size.
func NewRGBA(width, height int) *Canvas {
	return New(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Width returns the image width in pixels.
func (c *Canvas) Width() int { return c.dst.Bounds().Dx() }

// Height returns the image height in pixels.
func (c *Canvas) Height() int { return c.dst.Bounds().Dy() }

// Clear fills the whole image with col, ignoring clip and translation.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Push saves the translation and clip.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.cur)
}

// Pop restores the state saved by the matching Push. An unmatched Pop is a
// no-op.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.cur.tx += dx
	c.cur.ty += dy
}

// ClipRect intersects the clip with r, given in the current coordinates.
func (c *Canvas) ClipRect(r graphics3d.Rect) {
	x0 := int(math.Floor(r.X + c.cur.tx))
	y0 := int(math.Floor(r.Y + c.cur.ty))
	x1 := int(math.Ceil(r.X + r.W + c.cur.tx))
	y1 := int(math.Ceil(r.Y + r.H + c.cur.ty))
	c.cur.clip = c.cur.clip.Intersect(image.Rect(x0, y0, x1, y1))
}

// FillPolygon fills the polygon through pts with col using the non-zero
// winding rule.
func (c *Canvas) FillPolygon(pts []graphics3d.Point2D, col color.NRGBA) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	clip := c.cur.clip
	if clip.Empty() {
		return
	}
	w, h := clip.Dx(), clip.Dy()
	ox := c.cur.tx - float64(clip.Min.X)
	oy := c.cur.ty - float64(clip.Min.Y)
	xy := c.xy[:0]
	for _, p := range pts {
		xy = append(xy, float64(p.X)+ox, float64(p.Y)+oy)
	}
	c.xy = xy
	// Vertices far outside the clip would make the rasterizer walk every
	// row and column between them.
	poly := clipPolygon(c.clipped, xy, -1, -1, float64(w+1), float64(h+1))
	c.clipped = poly
	if poly == nil {
		return
	}
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(poly[0]), float32(poly[1]))
	for i := 2; i < len(poly); i += 2 {
		c.z.LineTo(float32(poly[i]), float32(poly[i+1]))
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, clip, image.NewUniform(col), image.Point{})
}

// StrokePolygon outlines the closed polygon through pts. Widths of one pixel
// or less are drawn as aliased hairlines; wider strokes are filled quads.
func (c *Canvas) StrokePolygon(pts []graphics3d.Point2D, col color.NRGBA, width float64) {
	if len(pts) < 2 || col.A == 0 || c.cur.clip.Empty() {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if width <= 1 {
			drawLine(c.dst, c.cur.clip,
				float64(a.X)+c.cur.tx, float64(a.Y)+c.cur.ty,
				float64(b.X)+c.cur.tx, float64(b.Y)+c.cur.ty, col)
			continue
		}
		if quad, ok := segmentQuad(a, b, width); ok {
			c.FillPolygon(quad, col)
		}
	}
}

// segmentQuad returns the rectangle of the given width centred on a→b.
func segmentQuad(a, b graphics3d.Point2D, width float64) ([]graphics3d.Point2D, bool) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil, false
	}
	nx, ny := float32(-dy/l*width/2), float32(dx/l*width/2)
	return []graphics3d.Point2D{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, true
}

var _ graphics3d.Canvas = (*Canvas)(nil)

package chart

import (
	"image/color"

	"github.com/fulldump/chart3d/graphics3d"
)

// wallFaces are the six sides of a box over the corners
//
//	0 (x0,y0,z0)  1 (x1,y0,z0)  2 (x1,y1,z0)  3 (x0,y1,z0)
//	4 (x0,y0,z1)  5 (x1,y0,z1)  6 (x1,y1,z1)  7 (x0,y1,z1)
//
// wound counter-clockwise seen from inside, so only the walls behind the
// plot face the camera.
var wallFaces = [6][4]int{
	{7, 6, 5, 4}, // back of +z
	{1, 2, 3, 0}, // back of -z
	{5, 6, 2, 1}, // back of +x
	{3, 7, 4, 0}, // back of -x
	{2, 6, 7, 3}, // ceiling
	{4, 5, 1, 0}, // floor
}

// ChartBox draws the walls of the plot box that lie behind the data.
type ChartBox struct {
	Color color.NRGBA

	// Ceiling draws the top wall when the camera looks up from below.
	Ceiling bool

	// Padding grows the box beyond the plot on every side, in world units.
	Padding float64
}

// DefaultChartBox returns a light grey box.
func DefaultChartBox() *ChartBox {
	return &ChartBox{Color: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}, Ceiling: true}
}

// Dimensions returns the box size around a plot of size d.
func (b *ChartBox) Dimensions(d graphics3d.Dimension3D) graphics3d.Dimension3D {
	p := 2 * b.Padding
	return graphics3d.Dimension3D{Width: d.Width + p, Height: d.Height + p, Depth: d.Depth + p}
}

// Compose adds the walls around the plot box at origin with size d.
func (b *ChartBox) Compose(w *graphics3d.World, origin graphics3d.Point3D, d graphics3d.Dimension3D) error {
	lo := origin.Sub(graphics3d.Pt3(b.Padding, b.Padding, b.Padding))
	hi := origin.Add(graphics3d.Pt3(d.Width+b.Padding, d.Height+b.Padding, d.Depth+b.Padding))

	obj := graphics3d.NewObject3D(b.Color, true)
	for _, c := range [8]graphics3d.Point3D{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z}, {X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z},
	} {
		obj.AddVertex(c)
	}
	for i, f := range wallFaces {
		if i == 4 && !b.Ceiling {
			continue
		}
		if err := obj.AddFaceIndices(f[:]...); err != nil {
			return err
		}
	}
	return w.Add(obj)
}

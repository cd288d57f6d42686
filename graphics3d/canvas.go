package graphics3d

import "image/color"

// Canvas is the 2D drawing surface the renderer issues polygons against.
//
// Translate and ClipRect apply to the current state; Push saves that state
// and Pop restores it. ClipRect coordinates are in the current (translated)
// space, like polygon coordinates.
//
// The renderer reuses the pts slice between calls. An implementation that
// keeps the points after FillPolygon or StrokePolygon returns must copy them.
type Canvas interface {
	Push()
	Pop()
	Translate(dx, dy float64)
	ClipRect(r Rect)
	FillPolygon(pts []Point2D, c color.NRGBA)
	StrokePolygon(pts []Point2D, c color.NRGBA, width float64)
}

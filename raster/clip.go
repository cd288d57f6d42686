package raster

import (
	"image"
	"math"
)

// clipSegment cuts the segment to the closed rectangle r (Liang-Barsky). It
// reports false when nothing of the segment lies inside r or an endpoint is
// not finite.
func clipSegment(r image.Rectangle, x1, y1, x2, y2 float64) (float64, float64, float64, float64, bool) {
	for _, v := range [4]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - float64(r.Min.X)},
		{dx, float64(r.Max.X) - x1},
		{-dy, y1 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// edgeX and edgeY select the coordinate a clip edge bounds.
const (
	edgeX = iota
	edgeY
)

type clipEdge struct {
	axis  int
	bound float64
	keep  float64 // +1 keeps v >= bound, -1 keeps v <= bound
}

// clipPolygon cuts the closed polygon xy (x, y pairs) to the rectangle
// [x0, x1]×[y0, y1] (Sutherland-Hodgman). Winding numbers inside the
// rectangle are preserved, so non-zero filling is unchanged there. dst is
// reused for the result; nil means nothing remains or a coordinate is not
// finite.
func clipPolygon(dst, xy []float64, x0, y0, x1, y1 float64) []float64 {
	for _, v := range xy {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	in := append([]float64(nil), xy...)
	out := dst[:0]
	for _, e := range [4]clipEdge{{edgeX, x0, 1}, {edgeX, x1, -1}, {edgeY, y0, 1}, {edgeY, y1, -1}} {
		out = out[:0]
		n := len(in) / 2
		for i := 0; i < n; i++ {
			ax, ay := in[2*i], in[2*i+1]
			j := (i + 1) % n
			bx, by := in[2*j], in[2*j+1]
			da, db := e.dist(ax, ay), e.dist(bx, by)
			if da >= 0 {
				out = append(out, ax, ay)
			}
			if (da >= 0) != (db >= 0) {
				t := da / (da - db)
				out = append(out, ax+t*(bx-ax), ay+t*(by-ay))
			}
		}
		if len(out) < 6 {
			return nil
		}
		in = append(in[:0], out...)
	}
	return out
}

// dist is the signed distance of (x, y) inside the edge.
func (e clipEdge) dist(x, y float64) float64 {
	if e.axis == edgeX {
		return e.keep * (x - e.bound)
	}
	return e.keep * (y - e.bound)
}

package chart

import (
	"fmt"
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// Plot composes dataset items into geometry.
type Plot interface {
	// Dimensions returns the extent of the geometry built by Compose.
	Dimensions() graphics3d.Dimension3D

	// Compose adds the plot's objects to w inside the box that starts at
	// origin and spans Dimensions.
	Compose(w *graphics3d.World, origin graphics3d.Point3D) error
}

// DefaultCategorySize is the size of bar, line and area plots without one.
var DefaultCategorySize = graphics3d.Dimension3D{Width: 10, Height: 6, Depth: 4}

func sizeOrDefault(d, def graphics3d.Dimension3D) graphics3d.Dimension3D {
	if d == (graphics3d.Dimension3D{}) {
		return def
	}
	return d
}

func validateSize(d graphics3d.Dimension3D) error {
	for _, v := range []float64{d.Width, d.Height, d.Depth} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v", ErrInvalidSize, d)
		}
	}
	return nil
}

// scale maps data values linearly onto [0, length].
type scale struct {
	lo, hi, length float64
}

func newScale(lo, hi, length float64) scale {
	if !(hi > lo) {
		// Single value: centre it.
		lo, hi = lo-1, hi+1
	}
	return scale{lo: lo, hi: hi, length: length}
}

// valueScale maps values onto the plot height with zero always in range.
func valueScale(d *CategoryDataset, length float64) scale {
	lo, hi, ok := d.Range()
	if !ok {
		lo, hi = 0, 1
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		hi = 1
	}
	return newScale(lo, hi, length)
}

func (s scale) Map(v float64) float64 {
	return (v - s.lo) / (s.hi - s.lo) * s.length
}

// categoryGrid lays categories out along X and series along Z, series 0 at
// the front (largest Z).
type categoryGrid struct {
	origin       graphics3d.Point3D
	slotX, slotZ float64
	depth        float64
}

func newCategoryGrid(d *CategoryDataset, size graphics3d.Dimension3D, origin graphics3d.Point3D) categoryGrid {
	return categoryGrid{
		origin: origin,
		slotX:  size.Width / float64(d.CategoryCount()),
		slotZ:  size.Depth / float64(d.SeriesCount()),
		depth:  size.Depth,
	}
}

func (g categoryGrid) X(c int) float64 {
	return g.origin.X + (float64(c)+0.5)*g.slotX
}

func (g categoryGrid) Z(s int) float64 {
	return g.origin.Z + g.depth - (float64(s)+0.5)*g.slotZ
}

func fractionOrDefault(f, def float64) float64 {
	if f > 0 && f <= 1 {
		return f
	}
	return def
}

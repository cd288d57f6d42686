package chart

import (
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// LinePlot draws each series as a ribbon through its category values.
// Missing values break the ribbon.
type LinePlot struct {
	Dataset *CategoryDataset
	Colors  Palette
	Size    graphics3d.Dimension3D

	// Thickness of the ribbon along Y in world units. Size.Height/40 when
	// unset.
	Thickness float64

	// RibbonDepth is the share of a series slot along Z. 0.5 when unset.
	RibbonDepth float64

	Outline bool
}

func (p *LinePlot) Dimensions() graphics3d.Dimension3D {
	return sizeOrDefault(p.Size, DefaultCategorySize)
}

func (p *LinePlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	size, grid, sc, ok, err := prepareCategory(p.Dataset, p.Dimensions(), origin)
	if err != nil || !ok {
		return err
	}
	d := p.Dataset
	half := p.Thickness / 2
	if !(half > 0) {
		half = size.Height / 80
	}
	rd := grid.slotZ * fractionOrDefault(p.RibbonDepth, 0.5) / 2

	for s := 0; s < d.SeriesCount(); s++ {
		z0, z1 := grid.Z(s)-rd, grid.Z(s)+rd
		for c := 0; c+1 < d.CategoryCount(); c++ {
			va, vb := d.Value(s, c), d.Value(s, c+1)
			if math.IsNaN(va) || math.IsNaN(vb) {
				continue
			}
			xa, xb := grid.X(c), grid.X(c+1)
			ya, yb := origin.Y+sc.Map(va), origin.Y+sc.Map(vb)
			ribbon := graphics3d.Prism(quadCorners(xa, ya-half, ya+half, xb, yb-half, yb+half, z0, z1), p.Colors.At(s), p.Outline)
			if err := w.Add(ribbon); err != nil {
				return err
			}
		}
	}
	return nil
}

// AreaPlot draws each series as a slab filled between zero and its values.
// Segments that cross zero are split at the crossing so every slab lies on
// one side of the baseline.
type AreaPlot struct {
	Dataset *CategoryDataset
	Colors  Palette
	Size    graphics3d.Dimension3D

	// AreaDepth is the share of a series slot along Z. 0.6 when unset.
	AreaDepth float64

	Outline bool
}

func (p *AreaPlot) Dimensions() graphics3d.Dimension3D {
	return sizeOrDefault(p.Size, DefaultCategorySize)
}

func (p *AreaPlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	_, grid, sc, ok, err := prepareCategory(p.Dataset, p.Dimensions(), origin)
	if err != nil || !ok {
		return err
	}
	d := p.Dataset
	base := origin.Y + sc.Map(0)
	ad := grid.slotZ * fractionOrDefault(p.AreaDepth, 0.6) / 2

	for s := 0; s < d.SeriesCount(); s++ {
		z0, z1 := grid.Z(s)-ad, grid.Z(s)+ad
		for c := 0; c+1 < d.CategoryCount(); c++ {
			va, vb := d.Value(s, c), d.Value(s, c+1)
			if math.IsNaN(va) || math.IsNaN(vb) {
				continue
			}
			xa, xb := grid.X(c), grid.X(c+1)
			ya, yb := origin.Y+sc.Map(va), origin.Y+sc.Map(vb)
			for _, sl := range splitAtBaseline(xa, ya, xb, yb, base) {
				y0a, y1a := math.Min(sl.ya, base), math.Max(sl.ya, base)
				y0b, y1b := math.Min(sl.yb, base), math.Max(sl.yb, base)
				slab := graphics3d.Prism(quadCorners(sl.xa, y0a, y1a, sl.xb, y0b, y1b, z0, z1), p.Colors.At(s), p.Outline)
				if slab.FaceCount() == 0 {
					continue
				}
				if err := w.Add(slab); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

type span struct {
	xa, ya, xb, yb float64
}

// splitAtBaseline splits the segment a→b where it crosses y = base.
func splitAtBaseline(xa, ya, xb, yb, base float64) []span {
	if (ya-base)*(yb-base) >= 0 {
		return []span{{xa, ya, xb, yb}}
	}
	xc := xa + (xb-xa)*(base-ya)/(yb-ya)
	return []span{{xa, ya, xc, base}, {xc, base, xb, yb}}
}

// quadCorners returns Prism corners for a slab whose bottom and top edges
// run from x = xa to x = xb, extruded from z0 to z1.
func quadCorners(xa, y0a, y1a, xb, y0b, y1b, z0, z1 float64) [8]graphics3d.Point3D {
	return [8]graphics3d.Point3D{
		{X: xa, Y: y0a, Z: z0}, {X: xb, Y: y0b, Z: z0}, {X: xb, Y: y1b, Z: z0}, {X: xa, Y: y1a, Z: z0},
		{X: xa, Y: y0a, Z: z1}, {X: xb, Y: y0b, Z: z1}, {X: xb, Y: y1b, Z: z1}, {X: xa, Y: y1a, Z: z1},
	}
}

// prepareCategory validates a category plot and returns its layout. ok is
// false when there is nothing to draw.
func prepareCategory(d *CategoryDataset, size graphics3d.Dimension3D, origin graphics3d.Point3D) (graphics3d.Dimension3D, categoryGrid, scale, bool, error) {
	if d == nil {
		return size, categoryGrid{}, scale{}, false, ErrNilDataset
	}
	if err := validateSize(size); err != nil {
		return size, categoryGrid{}, scale{}, false, err
	}
	if d.SeriesCount() == 0 || d.CategoryCount() < 2 {
		return size, categoryGrid{}, scale{}, false, nil
	}
	return size, newCategoryGrid(d, size, origin), valueScale(d, size.Height), true, nil
}

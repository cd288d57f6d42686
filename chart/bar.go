package chart

import (
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// BarPlot draws one bar per (series, category) value, categories along X
// and series along Z. Bars grow up from zero, or down for negative values.
type BarPlot struct {
	Dataset *CategoryDataset
	Colors  Palette

	// Size of the plot; DefaultCategorySize when zero.
	Size graphics3d.Dimension3D

	// BarWidth and BarDepth are the share of a category slot along X and of
	// a series slot along Z covered by a bar. 0.6 when unset.
	BarWidth, BarDepth float64
}

func (p *BarPlot) Dimensions() graphics3d.Dimension3D {
	return sizeOrDefault(p.Size, DefaultCategorySize)
}

func (p *BarPlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	if p.Dataset == nil {
		return ErrNilDataset
	}
	size := p.Dimensions()
	if err := validateSize(size); err != nil {
		return err
	}
	d := p.Dataset
	if d.SeriesCount() == 0 || d.CategoryCount() == 0 {
		return nil
	}
	grid := newCategoryGrid(d, size, origin)
	sc := valueScale(d, size.Height)
	base := origin.Y + sc.Map(0)
	bw := grid.slotX * fractionOrDefault(p.BarWidth, 0.6)
	bd := grid.slotZ * fractionOrDefault(p.BarDepth, 0.6)

	for s := 0; s < d.SeriesCount(); s++ {
		for c := 0; c < d.CategoryCount(); c++ {
			v := d.Value(s, c)
			if math.IsNaN(v) {
				continue
			}
			bar, err := graphics3d.Bar(bw, grid.X(c), base, origin.Y+sc.Map(v), grid.Z(s), bd, p.Colors.At(s))
			if err != nil {
				return err
			}
			if err := w.Add(bar); err != nil {
				return err
			}
		}
	}
	return nil
}

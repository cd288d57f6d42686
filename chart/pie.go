package chart

import (
	"fmt"
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// PiePlot draws a pie as cylinder wedges standing on the floor of its box.
// Segments run counter-clockwise seen from above, starting at the back of
// the pie (+π/2 from +X) turned by StartAngle.
type PiePlot struct {
	Dataset *PieDataset
	Colors  Palette

	Radius float64 // 4 when unset
	Height float64 // 1 when unset

	// StartAngle turns the first segment, in radians.
	StartAngle float64

	// Explode moves segments out from the centre, as a share of Radius,
	// by key.
	Explode map[string]float64

	// Step is the largest angle covered by one side face of the curved
	// rim. π/36 when unset.
	Step float64
}

func (p *PiePlot) radius() float64 {
	if p.Radius > 0 {
		return p.Radius
	}
	return 4
}

func (p *PiePlot) height() float64 {
	if p.Height > 0 {
		return p.Height
	}
	return 1
}

func (p *PiePlot) step() float64 {
	if p.Step > 0 {
		return p.Step
	}
	return math.Pi / 36
}

func (p *PiePlot) maxExplode() float64 {
	var m float64
	for _, e := range p.Explode {
		m = math.Max(m, e)
	}
	return m
}

// Dimensions covers the pie with its most exploded segment in any direction.
func (p *PiePlot) Dimensions() graphics3d.Dimension3D {
	r := p.radius() * (1 + p.maxExplode())
	return graphics3d.Dimension3D{Width: 2 * r, Height: p.height(), Depth: 2 * r}
}

func (p *PiePlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	if p.Dataset == nil {
		return ErrNilDataset
	}
	for k, e := range p.Explode {
		if !(e >= 0) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: explode %s=%v", ErrInvalidValue, k, e)
		}
	}
	total := p.Dataset.Total()
	if total <= 0 {
		return nil
	}
	dims := p.Dimensions()
	center := origin.Add(graphics3d.Pt3(dims.Width/2, 0, dims.Depth/2))
	r := p.radius()

	a := math.Pi/2 + p.StartAngle
	for i := 0; i < p.Dataset.Len(); i++ {
		v := p.Dataset.Value(i)
		if v == 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		seg, err := graphics3d.PieSegment(r, r*p.Explode[p.Dataset.Key(i)], 0, p.height(), a, a+sweep, p.step(), p.Colors.At(i))
		if err != nil {
			return fmt.Errorf("segment %s: %w", p.Dataset.Key(i), err)
		}
		seg.Translate(center)
		if err := w.Add(seg); err != nil {
			return err
		}
		a += sweep
	}
	return nil
}

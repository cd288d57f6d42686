package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// DefaultSurfaceSize is the size of surface plots without one.
var DefaultSurfaceSize = graphics3d.Dimension3D{Width: 10, Height: 6, Depth: 10}

// SurfacePlot samples a function over a rectangular grid of the XZ plane
// and draws it as double-sided triangles coloured by height.
type SurfacePlot struct {
	Func SurfaceFunc

	XMin, XMax float64
	ZMin, ZMax float64

	// Steps is the number of grid cells along each axis. 20 when unset.
	Steps int

	// LowColor and HighColor colour the lowest and highest samples.
	LowColor, HighColor color.NRGBA

	Size    graphics3d.Dimension3D
	Outline bool
}

func (p *SurfacePlot) Dimensions() graphics3d.Dimension3D {
	return sizeOrDefault(p.Size, DefaultSurfaceSize)
}

func (p *SurfacePlot) steps() int {
	if p.Steps > 0 {
		return p.Steps
	}
	return 20
}

func (p *SurfacePlot) colors() (lo, hi color.NRGBA) {
	lo, hi = p.LowColor, p.HighColor
	if lo.A == 0 && hi.A == 0 {
		lo, hi = DefaultPalette.At(0), DefaultPalette.At(3)
	}
	return lo, hi
}

func (p *SurfacePlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	if p.Func == nil {
		return ErrNilDataset
	}
	if !(p.XMax > p.XMin) || !(p.ZMax > p.ZMin) {
		return fmt.Errorf("%w: x %v..%v, z %v..%v", ErrInvalidValue, p.XMin, p.XMax, p.ZMin, p.ZMax)
	}
	size := p.Dimensions()
	if err := validateSize(size); err != nil {
		return err
	}

	n := p.steps()
	ys := make([]float64, (n+1)*(n+1))
	yLo, yHi := math.Inf(1), math.Inf(-1)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			x := p.XMin + (p.XMax-p.XMin)*float64(i)/float64(n)
			z := p.ZMin + (p.ZMax-p.ZMin)*float64(j)/float64(n)
			y := p.Func(x, z)
			if math.IsInf(y, 0) {
				y = math.NaN()
			}
			ys[i*(n+1)+j] = y
			if !math.IsNaN(y) {
				yLo, yHi = math.Min(yLo, y), math.Max(yHi, y)
			}
		}
	}
	if yLo > yHi {
		return nil
	}
	sy := newScale(yLo, yHi, size.Height)

	lowC, highC := p.colors()
	obj := graphics3d.NewObject3D(lowC, p.Outline)
	idx := make([]int, len(ys))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			k := i*(n+1) + j
			if math.IsNaN(ys[k]) {
				idx[k] = -1
				continue
			}
			idx[k] = obj.AddVertexXYZ(
				origin.X+size.Width*float64(i)/float64(n),
				origin.Y+sy.Map(ys[k]),
				origin.Z+size.Depth*float64(j)/float64(n),
			)
		}
	}

	tri := func(a, b, c int) error {
		if idx[a] < 0 || idx[b] < 0 || idx[c] < 0 {
			return nil
		}
		t := (sy.Map(ys[a]) + sy.Map(ys[b]) + sy.Map(ys[c])) / (3 * size.Height)
		f, err := graphics3d.NewFace([]int{idx[a], idx[b], idx[c]}, lerpColor(lowC, highC, t), p.Outline)
		if err != nil {
			return err
		}
		return obj.AddFace(f.DoubleSided())
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k00 := i*(n+1) + j
			k01, k10 := k00+1, k00+n+1
			k11 := k10 + 1
			// Counter-clockwise seen from above.
			if err := tri(k00, k01, k11); err != nil {
				return err
			}
			if err := tri(k00, k11, k10); err != nil {
				return err
			}
		}
	}
	return w.Add(obj)
}

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fulldump/chart3d/graphics3d"
)

// Marker is the solid drawn for a scatter point.
type Marker int

const (
	MarkerCube Marker = iota
	MarkerTetrahedron
	MarkerOctahedron
)

var markerNames = [...]string{"cube", "tetrahedron", "octahedron"}

func (m Marker) String() string {
	if m >= 0 && int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(%d)", int(m))
}

// ParseMarker returns the marker with the given name, ignoring case.
func ParseMarker(s string) (Marker, error) {
	for i, n := range markerNames {
		if strings.EqualFold(s, n) {
			return Marker(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
}

func (m Marker) build(size float64, p graphics3d.Point3D, c color.NRGBA) (*graphics3d.Object3D, error) {
	switch m {
	case MarkerTetrahedron:
		return graphics3d.Tetrahedron(size, p.X, p.Y, p.Z, c)
	case MarkerOctahedron:
		return graphics3d.Octahedron(size, p.X, p.Y, p.Z, c)
	default:
		return graphics3d.Cube(p.X, p.Y, p.Z, size, c)
	}
}

// DefaultScatterSize is the size of scatter plots without one.
var DefaultScatterSize = graphics3d.Dimension3D{Width: 10, Height: 10, Depth: 10}

// ScatterPlot draws a marker at every point of an XYZ dataset. Each axis is
// scaled independently so the points fill the plot box.
type ScatterPlot struct {
	Dataset *XYZDataset
	Colors  Palette
	Size    graphics3d.Dimension3D

	// Markers are used per series, cyclically. Series cycle through cube,
	// tetrahedron and octahedron when empty.
	Markers []Marker

	// MarkerSize in world units. 1/25 of the smallest plot extent when unset.
	MarkerSize float64
}

func (p *ScatterPlot) Dimensions() graphics3d.Dimension3D {
	return sizeOrDefault(p.Size, DefaultScatterSize)
}

func (p *ScatterPlot) marker(s int) Marker {
	if len(p.Markers) == 0 {
		return Marker(s % len(markerNames))
	}
	return p.Markers[s%len(p.Markers)]
}

func (p *ScatterPlot) Compose(w *graphics3d.World, origin graphics3d.Point3D) error {
	if p.Dataset == nil {
		return ErrNilDataset
	}
	size := p.Dimensions()
	if err := validateSize(size); err != nil {
		return err
	}
	lo, hi, ok := p.Dataset.Bounds()
	if !ok {
		return nil
	}
	sx := newScale(lo.X, hi.X, size.Width)
	sy := newScale(lo.Y, hi.Y, size.Height)
	sz := newScale(lo.Z, hi.Z, size.Depth)
	ms := p.MarkerSize
	if !(ms > 0) {
		ms = min(size.Width, size.Height, size.Depth) / 25
	}

	for s, series := range p.Dataset.Series() {
		m, c := p.marker(s), p.Colors.At(s)
		for _, pt := range series.Points {
			at := origin.Add(graphics3d.Pt3(sx.Map(pt.X), sy.Map(pt.Y), sz.Map(pt.Z)))
			obj, err := m.build(ms, at, c)
			if err != nil {
				return fmt.Errorf("series %s: %w", series.Key, err)
			}
			if err := w.Add(obj); err != nil {
				return err
			}
		}
	}
	return nil
}

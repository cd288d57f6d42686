package chart

import (
	"fmt"
	"math"

	"github.com/fulldump/chart3d/graphics3d"
)

// CategoryDataset holds one value per (series, category) pair. NaN marks a
// missing value.
type CategoryDataset struct {
	series     []string
	categories []string
	values     [][]float64
}

// NewCategoryDataset creates a dataset with values indexed [series][category].
func NewCategoryDataset(series, categories []string, values [][]float64) (*CategoryDataset, error) {
	if len(values) != len(series) {
		return nil, fmt.Errorf("%w: %d series, %d value rows", ErrDatasetShape, len(series), len(values))
	}
	d := &CategoryDataset{
		series:     append([]string(nil), series...),
		categories: append([]string(nil), categories...),
		values:     make([][]float64, len(values)),
	}
	for s, row := range values {
		if len(row) != len(categories) {
			return nil, fmt.Errorf("%w: series %q has %d values for %d categories",
				ErrDatasetShape, series[s], len(row), len(categories))
		}
		for c, v := range row {
			if math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s/%s is infinite", ErrInvalidValue, series[s], categories[c])
			}
		}
		d.values[s] = append([]float64(nil), row...)
	}
	return d, nil
}

func (d *CategoryDataset) SeriesCount() int   { return len(d.series) }
func (d *CategoryDataset) CategoryCount() int { return len(d.categories) }

// SeriesKey returns the name of series s.
func (d *CategoryDataset) SeriesKey(s int) string { return d.series[s] }

// CategoryKey returns the name of category c.
func (d *CategoryDataset) CategoryKey(c int) string { return d.categories[c] }

// Value returns the value of series s in category c.
func (d *CategoryDataset) Value(s, c int) float64 { return d.values[s][c] }

// Range returns the smallest and largest non-missing values.
func (d *CategoryDataset) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range d.values {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return lo, hi, lo <= hi
}

// PieDataset holds non-negative values by key.
type PieDataset struct {
	keys   []string
	values []float64
}

// NewPieDataset creates a pie dataset. Values must be non-negative and
// finite.
func NewPieDataset(keys []string, values []float64) (*PieDataset, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrDatasetShape, len(keys), len(values))
	}
	for i, v := range values {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidValue, keys[i], v)
		}
	}
	return &PieDataset{
		keys:   append([]string(nil), keys...),
		values: append([]float64(nil), values...),
	}, nil
}

func (d *PieDataset) Len() int            { return len(d.keys) }
func (d *PieDataset) Key(i int) string    { return d.keys[i] }
func (d *PieDataset) Value(i int) float64 { return d.values[i] }

// Total returns the sum of all values.
func (d *PieDataset) Total() float64 {
	var t float64
	for _, v := range d.values {
		t += v
	}
	return t
}

// XYZSeries is a named list of points.
type XYZSeries struct {
	Key    string
	Points []graphics3d.Point3D
}

// XYZDataset holds series of points in data coordinates.
type XYZDataset struct {
	series []XYZSeries
}

// Add appends a series. Points with non-finite coordinates are rejected.
func (d *XYZDataset) Add(key string, pts ...graphics3d.Point3D) error {
	for _, p := range pts {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s has point %+v", ErrInvalidValue, key, p)
			}
		}
	}
	d.series = append(d.series, XYZSeries{Key: key, Points: append([]graphics3d.Point3D(nil), pts...)})
	return nil
}

// Series returns the series list. The slice must not be modified.
func (d *XYZDataset) Series() []XYZSeries { return d.series }

// Bounds returns the smallest box containing every point.
func (d *XYZDataset) Bounds() (lo, hi graphics3d.Point3D, ok bool) {
	for _, s := range d.series {
		for _, p := range s.Points {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo = graphics3d.Pt3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
			hi = graphics3d.Pt3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
		}
	}
	return lo, hi, ok
}

// SurfaceFunc returns the height y of a surface at (x, z). NaN leaves a hole.
type SurfaceFunc func(x, z float64) float64

package chart

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/fulldump/chart3d/graphics3d"
)

const eps = 1e-9

func mustCategory(t *testing.T, series, categories []string, values [][]float64) *CategoryDataset {
	t.Helper()
	d, err := NewCategoryDataset(series, categories, values)
	if err != nil {
		t.Fatalf("NewCategoryDataset: %v", err)
	}
	return d
}

// compose runs p.Compose at origin and returns the resulting world.
func compose(t *testing.T, p Plot, origin graphics3d.Point3D) *graphics3d.World {
	t.Helper()
	w := graphics3d.NewWorld()
	if err := p.Compose(w, origin); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return w
}

// assertInside checks that all geometry lies inside the plot box grown by
// slack.
func assertInside(t *testing.T, w *graphics3d.World, origin graphics3d.Point3D, d graphics3d.Dimension3D, slack float64) {
	t.Helper()
	lo, hi, ok := w.Bounds()
	if !ok {
		return
	}
	far := origin.Add(graphics3d.Pt3(d.Width, d.Height, d.Depth))
	if lo.X < origin.X-slack-eps || lo.Y < origin.Y-slack-eps || lo.Z < origin.Z-slack-eps ||
		hi.X > far.X+slack+eps || hi.Y > far.Y+slack+eps || hi.Z > far.Z+slack+eps {
		t.Errorf("geometry %+v..%+v outside plot box %+v..%+v", lo, hi, origin, far)
	}
}

func TestNewCategoryDataset_Errors(t *testing.T) {
	tests := []struct {
		name   string
		series []string
		values [][]float64
		want   error
	}{
		{"rows", []string{"a", "b"}, [][]float64{{1, 2}}, ErrDatasetShape},
		{"columns", []string{"a"}, [][]float64{{1}}, ErrDatasetShape},
		{"infinite", []string{"a"}, [][]float64{{1, math.Inf(1)}}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategoryDataset(tt.series, []string{"x", "y"}, tt.values)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCategoryDataset_RangeSkipsMissing(t *testing.T) {
	d := mustCategory(t, []string{"a"}, []string{"x", "y", "z"}, [][]float64{{math.NaN(), -2, 5}})
	lo, hi, ok := d.Range()
	if !ok || lo != -2 || hi != 5 {
		t.Errorf("Range() = %v, %v, %v; want -2, 5, true", lo, hi, ok)
	}
}

func TestNewPieDataset_Errors(t *testing.T) {
	if _, err := NewPieDataset([]string{"a"}, []float64{1, 2}); !errors.Is(err, ErrDatasetShape) {
		t.Errorf("mismatch: err = %v", err)
	}
	if _, err := NewPieDataset([]string{"a"}, []float64{-1}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative: err = %v", err)
	}
	if _, err := NewPieDataset([]string{"a"}, []float64{math.NaN()}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("NaN: err = %v", err)
	}
}

func TestXYZDataset_AddRejectsNonFinite(t *testing.T) {
	var d XYZDataset
	if err := d.Add("s", graphics3d.Pt3(0, math.NaN(), 0)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
	if len(d.Series()) != 0 {
		t.Error("rejected series was added")
	}
}

func TestBarPlot_Compose(t *testing.T) {
	d := mustCategory(t, []string{"a", "b"}, []string{"x", "y", "z"},
		[][]float64{{1, 2, 3}, {4, math.NaN(), -2}})
	p := &BarPlot{Dataset: d}
	origin := graphics3d.Pt3(-5, -3, -2)
	w := compose(t, p, origin)

	if got := len(w.Objects()); got != 5 {
		t.Fatalf("objects = %d, want 5 (one value missing)", got)
	}
	for i, o := range w.Objects() {
		if o.FaceCount() != 6 {
			t.Errorf("bar %d has %d faces, want 6", i, o.FaceCount())
		}
	}
	assertInside(t, w, origin, p.Dimensions(), 0)

	// Zero maps to 2/6 of the height: the scale runs from -2 to 4.
	base := origin.Y + 6*2.0/6
	neg := w.Objects()[4]
	lo, hi, _ := neg.Bounds()
	if math.Abs(hi.Y-base) > eps || math.Abs(lo.Y-origin.Y) > eps {
		t.Errorf("negative bar spans y %v..%v, want %v..%v", lo.Y, hi.Y, origin.Y, base)
	}
	if c := neg.Color(); c != DefaultPalette.At(1) {
		t.Errorf("second series colour = %v, want %v", c, DefaultPalette.At(1))
	}
}

func TestBarPlot_SeriesFrontToBack(t *testing.T) {
	d := mustCategory(t, []string{"front", "back"}, []string{"x"}, [][]float64{{1}, {1}})
	w := compose(t, &BarPlot{Dataset: d}, graphics3d.Origin)
	_, front, _ := w.Objects()[0].Bounds()
	_, back, _ := w.Objects()[1].Bounds()
	if !(front.Z > back.Z) {
		t.Errorf("series 0 at z=%v is not in front of series 1 at z=%v", front.Z, back.Z)
	}
}

func TestBarPlot_Errors(t *testing.T) {
	if err := (&BarPlot{}).Compose(graphics3d.NewWorld(), graphics3d.Origin); !errors.Is(err, ErrNilDataset) {
		t.Errorf("nil dataset: err = %v", err)
	}
	d := mustCategory(t, []string{"a"}, []string{"x"}, [][]float64{{1}})
	p := &BarPlot{Dataset: d, Size: graphics3d.Dimension3D{Width: 1, Height: -1, Depth: 1}}
	if err := p.Compose(graphics3d.NewWorld(), graphics3d.Origin); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative size: err = %v", err)
	}
}

func TestPiePlot_Compose(t *testing.T) {
	d, err := NewPieDataset([]string{"a", "b", "c"}, []float64{1, 0, 3})
	if err != nil {
		t.Fatal(err)
	}
	p := &PiePlot{Dataset: d, Explode: map[string]float64{"c": 0.25}}
	dims := p.Dimensions()
	if math.Abs(dims.Width-10) > eps || math.Abs(dims.Height-1) > eps {
		t.Errorf("Dimensions() = %+v, want width 10 (radius 4 exploded by 25%%), height 1", dims)
	}

	origin := graphics3d.Pt3(-dims.Width/2, 0, -dims.Depth/2)
	w := compose(t, p, origin)
	if got := len(w.Objects()); got != 2 {
		t.Fatalf("segments = %d, want 2 (zero value skipped)", got)
	}
	assertInside(t, w, origin, dims, 0)
}

func TestPiePlot_SingleValueIsFullCylinder(t *testing.T) {
	d, _ := NewPieDataset([]string{"all"}, []float64{7})
	w := compose(t, &PiePlot{Dataset: d, Step: math.Pi / 2}, graphics3d.Origin)
	if got := w.Objects()[0].FaceCount(); got != 6 {
		t.Errorf("faces = %d, want top, bottom and 4 sides", got)
	}
}

func TestPiePlot_EmptyTotal(t *testing.T) {
	d, _ := NewPieDataset([]string{"a"}, []float64{0})
	w := compose(t, &PiePlot{Dataset: d}, graphics3d.Origin)
	if len(w.Objects()) != 0 {
		t.Errorf("objects = %d, want 0", len(w.Objects()))
	}
}

func TestLinePlot_Compose(t *testing.T) {
	d := mustCategory(t, []string{"a"}, []string{"w", "x", "y", "z"}, [][]float64{{1, 3, math.NaN(), 2}})
	p := &LinePlot{Dataset: d}
	origin := graphics3d.Pt3(-5, -3, -2)
	w := compose(t, p, origin)

	if got := len(w.Objects()); got != 1 {
		t.Fatalf("ribbons = %d, want 1 (missing value breaks the line)", got)
	}
	if got := w.Objects()[0].FaceCount(); got != 6 {
		t.Errorf("ribbon faces = %d, want 6", got)
	}
	half := p.Dimensions().Height / 80
	assertInside(t, w, origin, p.Dimensions(), half)
}

func TestAreaPlot_SplitsAtBaseline(t *testing.T) {
	d := mustCategory(t, []string{"a"}, []string{"x", "y"}, [][]float64{{2, -2}})
	p := &AreaPlot{Dataset: d}
	origin := graphics3d.Pt3(0, 0, 0)
	w := compose(t, p, origin)

	if got := len(w.Objects()); got != 2 {
		t.Fatalf("slabs = %d, want 2", got)
	}
	base := p.Dimensions().Height / 2
	for i, o := range w.Objects() {
		lo, hi, _ := o.Bounds()
		above := lo.Y >= base-eps
		below := hi.Y <= base+eps
		if !above && !below {
			t.Errorf("slab %d spans y %v..%v across the baseline %v", i, lo.Y, hi.Y, base)
		}
		// Triangular ends: the collapsed side face is dropped.
		if o.FaceCount() != 5 {
			t.Errorf("slab %d has %d faces, want 5", i, o.FaceCount())
		}
	}
	assertInside(t, w, origin, p.Dimensions(), 0)
}

func TestSplitAtBaseline(t *testing.T) {
	got := splitAtBaseline(0, 1, 4, -3, 0)
	want := []span{{0, 1, 1, 0}, {1, 0, 4, -3}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("splitAtBaseline = %+v, want %+v", got, want)
	}
	if got := splitAtBaseline(0, 1, 4, 0, 0); len(got) != 1 {
		t.Errorf("segment ending on the baseline split into %d", len(got))
	}
}

func TestScatterPlot_Markers(t *testing.T) {
	var d XYZDataset
	_ = d.Add("cubes", graphics3d.Pt3(0, 0, 0), graphics3d.Pt3(10, 5, 2))
	_ = d.Add("tetras", graphics3d.Pt3(3, 1, 1))
	_ = d.Add("octas", graphics3d.Pt3(7, 4, 0))
	p := &ScatterPlot{Dataset: &d}
	origin := graphics3d.Pt3(-5, -5, -5)
	w := compose(t, p, origin)

	var faces []int
	for _, o := range w.Objects() {
		faces = append(faces, o.FaceCount())
	}
	want := []int{6, 6, 4, 8}
	if len(faces) != len(want) {
		t.Fatalf("faces = %v, want %v", faces, want)
	}
	for i := range want {
		if faces[i] != want[i] {
			t.Errorf("faces = %v, want %v", faces, want)
			break
		}
	}
	assertInside(t, w, origin, p.Dimensions(), 10.0/25)
}

func TestParseMarker(t *testing.T) {
	for _, m := range []Marker{MarkerCube, MarkerTetrahedron, MarkerOctahedron} {
		got, err := ParseMarker(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMarker(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMarker("OCTAHEDRON"); err != nil || m != MarkerOctahedron {
		t.Errorf("ParseMarker is case sensitive: %v, %v", m, err)
	}
	if _, err := ParseMarker("sphere"); !errors.Is(err, ErrUnknownMarker) {
		t.Errorf("err = %v, want ErrUnknownMarker", err)
	}
}

func TestSurfacePlot_Compose(t *testing.T) {
	low := color.NRGBA{B: 255, A: 255}
	high := color.NRGBA{R: 255, A: 255}
	p := &SurfacePlot{
		Func:      func(x, z float64) float64 { return x },
		XMin:      0,
		XMax:      1,
		ZMin:      0,
		ZMax:      1,
		Steps:     4,
		LowColor:  low,
		HighColor: high,
	}
	origin := graphics3d.Pt3(-5, -3, -5)
	w := compose(t, p, origin)
	if len(w.Objects()) != 1 {
		t.Fatalf("objects = %d, want 1", len(w.Objects()))
	}
	o := w.Objects()[0]
	if o.FaceCount() != 32 {
		t.Fatalf("faces = %d, want 32", o.FaceCount())
	}
	for i, f := range o.Faces() {
		if !f.IsDoubleSided() {
			t.Fatalf("face %d is single-sided", i)
		}
		n, ok := f.Normal(o.Vertices(), 0)
		if !ok || n.Y <= 0 {
			t.Fatalf("face %d normal %+v does not point up", i, n)
		}
	}
	first, last := o.Faces()[0].Color(), o.Faces()[len(o.Faces())-1].Color()
	if !(first.B > first.R) || !(last.R > last.B) {
		t.Errorf("colours run %v..%v, want low blue to high red", first, last)
	}
	assertInside(t, w, origin, p.Dimensions(), 0)
}

func TestSurfacePlot_Holes(t *testing.T) {
	p := &SurfacePlot{
		Func: func(x, z float64) float64 {
			if x == 0 && z == 0 {
				return math.NaN()
			}
			return x * z
		},
		XMax:  1,
		ZMax:  1,
		Steps: 2,
	}
	w := compose(t, p, graphics3d.Origin)
	// The corner sample touches both triangles of its cell.
	if got := w.Objects()[0].FaceCount(); got != 6 {
		t.Errorf("faces = %d, want 6", got)
	}
}

func TestSurfacePlot_Errors(t *testing.T) {
	if err := (&SurfacePlot{XMax: 1, ZMax: 1}).Compose(graphics3d.NewWorld(), graphics3d.Origin); !errors.Is(err, ErrNilDataset) {
		t.Errorf("nil func: err = %v", err)
	}
	p := &SurfacePlot{Func: func(x, z float64) float64 { return 0 }, XMin: 1, XMax: 1, ZMax: 1}
	if err := p.Compose(graphics3d.NewWorld(), graphics3d.Origin); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("empty range: err = %v", err)
	}
}

func TestChartBox_WallsFaceInward(t *testing.T) {
	b := &ChartBox{Color: color.NRGBA{A: 255}, Ceiling: true, Padding: 0.5}
	d := graphics3d.Dimension3D{Width: 4, Height: 2, Depth: 2}
	w := graphics3d.NewWorld()
	if err := b.Compose(w, graphics3d.Origin, d); err != nil {
		t.Fatal(err)
	}
	o := w.Objects()[0]
	if o.FaceCount() != 6 {
		t.Fatalf("faces = %d, want 6", o.FaceCount())
	}
	center := graphics3d.Pt3(2, 1, 1)
	for i, f := range o.Faces() {
		n, _ := f.Normal(o.Vertices(), 0)
		var c graphics3d.Point3D
		for _, v := range f.Vertices() {
			c = c.Add(o.Vertex(v))
		}
		c = c.Scale(0.25)
		if n.Dot(c.Sub(center)) >= 0 {
			t.Errorf("wall %d normal %+v points outward", i, n)
		}
	}
	if got := b.Dimensions(d); got != (graphics3d.Dimension3D{Width: 5, Height: 3, Depth: 3}) {
		t.Errorf("Dimensions() = %+v", got)
	}

	b.Ceiling = false
	w = graphics3d.NewWorld()
	_ = b.Compose(w, graphics3d.Origin, d)
	if got := w.Objects()[0].FaceCount(); got != 5 {
		t.Errorf("faces without ceiling = %d, want 5", got)
	}
}

func TestPalette_At(t *testing.T) {
	p := Palette{{R: 1}, {R: 2}}
	if p.At(3).R != 2 || p.At(-1).R != 2 {
		t.Errorf("At(3), At(-1) = %v, %v", p.At(3), p.At(-1))
	}
	var empty Palette
	if empty.At(0) != DefaultPalette[0] {
		t.Error("empty palette does not fall back to DefaultPalette")
	}
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}
	if got := lerpColor(a, b, 0.5); got != (color.NRGBA{R: 100, G: 100, B: 100, A: 255}) {
		t.Errorf("lerpColor(0.5) = %v", got)
	}
	if got := lerpColor(a, b, 2); got != b {
		t.Errorf("lerpColor(2) = %v, want %v", got, b)
	}
}

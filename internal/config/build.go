package config

import (
	"fmt"
	"math"

	"github.com/fulldump/chart3d/chart"
	"github.com/fulldump/chart3d/graphics3d"
)

// surfaces are the functions a surface chart can sample.
var surfaces = map[string]chart.SurfaceFunc{
	"plane":  func(x, z float64) float64 { return x + z },
	"saddle": func(x, z float64) float64 { return x*x - z*z },
	"ripple": func(x, z float64) float64 {
		r := math.Hypot(x, z)
		if r == 0 {
			return 1
		}
		return math.Sin(r) / r
	},
	"peaks": func(x, z float64) float64 {
		return 3*(1-x)*(1-x)*math.Exp(-x*x-(z+1)*(z+1)) -
			10*(x/5-x*x*x-math.Pow(z, 5))*math.Exp(-x*x-z*z) -
			math.Exp(-(x+1)*(x+1)-z*z)/3
	},
}

// Bounds returns the drawing bounds of the configured image.
func (c *Config) Bounds() graphics3d.Rect {
	return graphics3d.Rect{W: float64(c.Width), H: float64(c.Height)}
}

// Build creates the chart described by c.
func (c *Config) Build() (*chart.Chart, error) {
	plot, err := c.Plot()
	if err != nil {
		return nil, err
	}
	vp, err := c.ViewPoint()
	if err != nil {
		return nil, err
	}
	r, err := c.NewRenderer()
	if err != nil {
		return nil, err
	}

	opts := []chart.Option{chart.WithViewPoint(vp), chart.WithRenderer(r)}
	if c.Box != nil {
		b := chart.DefaultChartBox()
		if c.Box.Color != nil {
			b.Color = c.Box.Color.NRGBA()
		}
		if c.Box.Ceiling != nil {
			b.Ceiling = *c.Box.Ceiling
		}
		b.Padding = c.Box.Padding
		opts = append(opts, chart.WithChartBox(b))
	}
	if c.Sun != nil {
		opts = append(opts, chart.WithSunDirection(graphics3d.Pt3(c.Sun[0], c.Sun[1], c.Sun[2])))
	}
	if c.Camera.Distance > 0 {
		opts = append(opts, chart.WithFit(chart.FitNever))
	}
	return chart.New(plot, opts...)
}

// ViewPoint returns the configured camera. Without Camera.Distance the
// distance is a placeholder until the chart fits it.
func (c *Config) ViewPoint() (*graphics3d.ViewPoint3D, error) {
	rho := c.Camera.Distance
	if rho == 0 {
		rho = graphics3d.DefaultViewPoint().Rho()
	}
	return graphics3d.NewViewPoint3D(deg(c.Camera.Theta), deg(c.Camera.Phi), rho, deg(c.Camera.Roll))
}

// NewRenderer returns a renderer with the configured options.
func (c *Config) NewRenderer() (*graphics3d.Renderer, error) {
	var opts []graphics3d.RendererOption
	if c.Renderer.ProjectionDistance != 0 {
		opts = append(opts, graphics3d.WithProjectionDistance(c.Renderer.ProjectionDistance))
	}
	if c.Renderer.Margin != nil {
		opts = append(opts, graphics3d.WithMargin(*c.Renderer.Margin))
	}
	if c.Renderer.OutlineWidth != 0 {
		opts = append(opts, graphics3d.WithOutlineWidth(c.Renderer.OutlineWidth))
	}
	bg := chart.DefaultBackground
	if c.Renderer.Background != nil {
		bg = c.Renderer.Background.NRGBA()
	}
	opts = append(opts, graphics3d.WithBackground(bg))
	return graphics3d.NewRenderer(opts...)
}

// Plot returns the plot for the configured chart type.
func (c *Config) Plot() (chart.Plot, error) {
	var size graphics3d.Dimension3D
	if c.Size != nil {
		size = graphics3d.Dimension3D{Width: c.Size.Width, Height: c.Size.Height, Depth: c.Size.Depth}
	}
	palette := make(chart.Palette, len(c.Colors))
	for i, col := range c.Colors {
		palette[i] = col.NRGBA()
	}

	switch c.Type {
	case TypeBar, TypeLine, TypeArea:
		ds, err := c.categoryDataset()
		if err != nil {
			return nil, err
		}
		switch c.Type {
		case TypeBar:
			return &chart.BarPlot{Dataset: ds, Colors: palette, Size: size}, nil
		case TypeLine:
			return &chart.LinePlot{Dataset: ds, Colors: palette, Size: size}, nil
		default:
			return &chart.AreaPlot{Dataset: ds, Colors: palette, Size: size}, nil
		}

	case TypePie:
		keys := make([]string, len(c.Slices))
		values := make([]float64, len(c.Slices))
		explode := map[string]float64{}
		for i, s := range c.Slices {
			keys[i], values[i] = s.Key, s.Value
			if s.Explode > 0 {
				explode[s.Key] = s.Explode
			}
		}
		ds, err := chart.NewPieDataset(keys, values)
		if err != nil {
			return nil, err
		}
		p := &chart.PiePlot{Dataset: ds, Colors: palette, Explode: explode}
		if c.Size != nil {
			p.Radius = math.Min(c.Size.Width, c.Size.Depth) / 2
			p.Height = c.Size.Height
		}
		return p, nil

	case TypeScatter:
		ds := &chart.XYZDataset{}
		for _, s := range c.Series {
			pts := make([]graphics3d.Point3D, len(s.Points))
			for i, p := range s.Points {
				pts[i] = graphics3d.Pt3(p[0], p[1], p[2])
			}
			if err := ds.Add(s.Name, pts...); err != nil {
				return nil, err
			}
		}
		markers := make([]chart.Marker, len(c.Markers))
		for i, name := range c.Markers {
			m, err := chart.ParseMarker(name)
			if err != nil {
				return nil, err
			}
			markers[i] = m
		}
		return &chart.ScatterPlot{Dataset: ds, Colors: palette, Size: size, Markers: markers}, nil

	case TypeSurface:
		s := c.Surface
		fn, ok := surfaces[s.Function]
		if !ok {
			return nil, invalid("unknown surface function %q", s.Function)
		}
		p := &chart.SurfacePlot{
			Func: fn,
			XMin: s.X[0], XMax: s.X[1],
			ZMin: s.Z[0], ZMax: s.Z[1],
			Steps: s.Steps,
			Size:  size,
		}
		if s.Low != nil {
			p.LowColor = s.Low.NRGBA()
		}
		if s.High != nil {
			p.HighColor = s.High.NRGBA()
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
}

func (c *Config) categoryDataset() (*chart.CategoryDataset, error) {
	names := make([]string, len(c.Series))
	rows := make([][]float64, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Name
		rows[i] = make([]float64, len(s.Values))
		for j, v := range s.Values {
			if v == nil {
				rows[i][j] = math.NaN()
				continue
			}
			rows[i][j] = *v
		}
	}
	return chart.NewCategoryDataset(names, c.Categories, rows)
}

func deg(d float64) float64 { return d * math.Pi / 180 }

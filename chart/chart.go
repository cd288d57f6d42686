package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sync"

	"github.com/fulldump/chart3d/graphics3d"
)

// Option configures a Chart during creation.
type Option func(*Chart)

// WithChartBox draws b behind the plot. A nil box draws none.
func WithChartBox(b *ChartBox) Option {
	return func(c *Chart) { c.box = b }
}

// WithViewPoint uses vp as the chart camera instead of
// graphics3d.DefaultViewPoint.
func WithViewPoint(vp *graphics3d.ViewPoint3D) Option {
	return func(c *Chart) { c.vp = vp }
}

// WithRenderer uses r to draw the chart.
func WithRenderer(r *graphics3d.Renderer) Option {
	return func(c *Chart) { c.renderer = r }
}

// FitMode selects when Draw fits the camera distance to the drawing bounds.
type FitMode int

const (
	// FitOnce fits on the first Draw only, leaving later zooming alone.
	FitOnce FitMode = iota
	// FitAlways fits on every Draw.
	FitAlways
	// FitNever keeps the distance set on the view point.
	FitNever
)

// WithFit sets the fit mode. The default is FitOnce.
func WithFit(m FitMode) Option {
	return func(c *Chart) { c.fit = m }
}

// WithSunDirection sets the light direction, in eye space.
func WithSunDirection(dir graphics3d.Point3D) Option {
	return func(c *Chart) { c.sun = &dir }
}

// DefaultBackground is the background of charts created without a renderer.
var DefaultBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// scene is the geometry built from the plot. Worlds are not modified after
// build, so a scene can be drawn while a newer one is built.
type scene struct {
	walls, plot *graphics3d.World
	dims        graphics3d.Dimension3D
}

// Chart draws a plot inside an optional chart box.
//
// The world is rebuilt from the plot only when the chart is dirty: after
// creation and after Invalidate. Camera changes never rebuild it. Chart is
// safe for concurrent use.
type Chart struct {
	vp       *graphics3d.ViewPoint3D
	renderer *graphics3d.Renderer
	overlay  *graphics3d.Renderer
	fit      FitMode
	sun      *graphics3d.Point3D

	mu           sync.Mutex
	plot         Plot
	box          *ChartBox
	dirty        bool
	fitted       bool
	scene        *scene
	onInvalidate func()
}

// New creates a chart for plot.
func New(plot Plot, opts ...Option) (*Chart, error) {
	if plot == nil {
		return nil, ErrNilPlot
	}
	c := &Chart{plot: plot, dirty: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.vp == nil {
		c.vp = graphics3d.DefaultViewPoint()
	}
	if c.renderer == nil {
		r, err := graphics3d.NewRenderer(graphics3d.WithBackground(DefaultBackground))
		if err != nil {
			return nil, err
		}
		c.renderer = r
	}
	if c.sun != nil {
		if _, ok := c.sun.Normalize(); !ok {
			return nil, fmt.Errorf("%w: sun %+v", graphics3d.ErrZeroVector, *c.sun)
		}
	}
	// The plot pass must not paint the background over the walls.
	overlay, err := graphics3d.NewRenderer(
		graphics3d.WithProjectionDistance(c.renderer.ProjectionDistance()),
		graphics3d.WithMargin(c.renderer.Margin()),
		graphics3d.WithOutlineWidth(c.renderer.OutlineWidth()),
	)
	if err != nil {
		return nil, err
	}
	c.overlay = overlay
	return c, nil
}

// ViewPoint returns the chart camera. Moving it needs no Invalidate.
func (c *Chart) ViewPoint() *graphics3d.ViewPoint3D { return c.vp }

// Renderer returns the renderer that draws the chart.
func (c *Chart) Renderer() *graphics3d.Renderer { return c.renderer }

// Plot returns the current plot.
func (c *Chart) Plot() Plot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plot
}

// SetPlot replaces the plot and invalidates the chart.
func (c *Chart) SetPlot(p Plot) error {
	if p == nil {
		return ErrNilPlot
	}
	c.mu.Lock()
	c.plot = p
	c.mu.Unlock()
	c.Invalidate()
	return nil
}

// SetChartBox replaces the chart box and invalidates the chart. A nil box
// removes it.
func (c *Chart) SetChartBox(b *ChartBox) {
	c.mu.Lock()
	c.box = b
	c.mu.Unlock()
	c.Invalidate()
}

// OnInvalidate sets the function called after every Invalidate, replacing
// any previous one. Interactive front ends use it to request a redraw.
func (c *Chart) OnInvalidate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidate = fn
}

// Invalidate marks the geometry as stale, for instance after the plot's
// dataset changed, and calls the OnInvalidate hook.
func (c *Chart) Invalidate() {
	c.mu.Lock()
	c.dirty = true
	fn := c.onInvalidate
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Dimensions returns the extent of the scene, chart box included.
func (c *Chart) Dimensions() graphics3d.Dimension3D {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dimensions()
}

func (c *Chart) dimensions() graphics3d.Dimension3D {
	d := c.plot.Dimensions()
	if c.box != nil {
		d = c.box.Dimensions(d)
	}
	return d
}

// World returns the plot geometry, building it if the chart is dirty.
func (c *Chart) World() (*graphics3d.World, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.build()
	if err != nil {
		return nil, err
	}
	return s.plot, nil
}

// build returns the current scene, rebuilding it when dirty. c.mu is held.
func (c *Chart) build() (*scene, error) {
	if !c.dirty && c.scene != nil {
		return c.scene, nil
	}
	pd := c.plot.Dimensions()
	origin := graphics3d.Pt3(-pd.Width/2, -pd.Height/2, -pd.Depth/2)
	s := &scene{
		walls: graphics3d.NewWorld(),
		plot:  graphics3d.NewWorld(),
		dims:  c.dimensions(),
	}
	if c.sun != nil {
		// Validated in New.
		_ = s.walls.SetSunDirection(*c.sun)
		_ = s.plot.SetSunDirection(*c.sun)
	}
	if err := c.plot.Compose(s.plot, origin); err != nil {
		return nil, fmt.Errorf("compose plot: %w", err)
	}
	if c.box != nil {
		if err := c.box.Compose(s.walls, origin, pd); err != nil {
			return nil, fmt.Errorf("compose chart box: %w", err)
		}
	}
	graphics3d.Logger().Debug("chart: scene built",
		slog.Int("objects", len(s.plot.Objects())),
		slog.Int("faces", s.plot.FaceCount()),
		slog.Int("vertices", s.plot.VertexCount()))
	c.scene = s
	c.dirty = false
	return s, nil
}

// Fit sets the camera distance so the scene fills target, keeping the
// renderer's margin free.
func (c *Chart) Fit(target graphics3d.Size2D) error {
	dims := c.Dimensions()
	return c.vp.FitTo(target, dims, c.renderer.ProjectionDistance(), c.renderer.Margin())
}

// Draw renders the chart box and then the plot into bounds, fitting the
// camera distance to bounds as selected by WithFit.
func (c *Chart) Draw(ctx context.Context, canvas graphics3d.Canvas, bounds graphics3d.Rect) (graphics3d.RenderInfo, error) {
	if bounds.Empty() {
		return graphics3d.RenderInfo{}, graphics3d.ErrEmptyBounds
	}
	c.mu.Lock()
	s, err := c.build()
	fit := c.fit == FitAlways || (c.fit == FitOnce && !c.fitted)
	c.mu.Unlock()
	if err != nil {
		return graphics3d.RenderInfo{}, err
	}
	if fit {
		if err := c.vp.FitTo(graphics3d.Size2D{Width: bounds.W, Height: bounds.H}, s.dims,
			c.renderer.ProjectionDistance(), c.renderer.Margin()); err != nil {
			return graphics3d.RenderInfo{}, err
		}
		c.mu.Lock()
		c.fitted = true
		c.mu.Unlock()
	}

	walls, err := c.renderer.Render(ctx, s.walls, c.vp, canvas, bounds)
	if err != nil {
		return walls, err
	}
	plot, err := c.overlay.Render(ctx, s.plot, c.vp, canvas, bounds)
	return mergeInfo(walls, plot), err
}

func mergeInfo(a, b graphics3d.RenderInfo) graphics3d.RenderInfo {
	out := graphics3d.RenderInfo{
		Faces:       a.Faces + b.Faces,
		Drawn:       a.Drawn + b.Drawn,
		Culled:      a.Culled + b.Culled,
		Clipped:     a.Clipped + b.Clipped,
		Degenerate:  a.Degenerate + b.Degenerate,
		Transparent: a.Transparent + b.Transparent,
		Extent:      b.Extent,
	}
	switch {
	case a.Extent.Empty():
	case b.Extent.Empty():
		out.Extent = a.Extent
	default:
		x0, y0 := math.Min(a.Extent.X, b.Extent.X), math.Min(a.Extent.Y, b.Extent.Y)
		x1 := math.Max(a.Extent.X+a.Extent.W, b.Extent.X+b.Extent.W)
		y1 := math.Max(a.Extent.Y+a.Extent.H, b.Extent.Y+b.Extent.H)
		out.Extent = graphics3d.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	}
	return out
}

package graphics3d

import (
	"context"
	"image/color"
	"log/slog"
	"math"
)

// cancelCheckInterval is how many faces are drawn between context checks.
const cancelCheckInterval = 256

// RenderInfo describes what one frame drew.
type RenderInfo struct {
	Faces       int // faces in the world
	Drawn       int // faces filled on the canvas
	Culled      int // faces facing away from the camera
	Clipped     int // faces with a vertex at or behind the camera
	Degenerate  int // faces without a usable normal
	Transparent int // faces with the no-color sentinel

	// Extent is the bounding rectangle of the drawn polygons in canvas
	// coordinates. It is empty when nothing was drawn.
	Extent Rect
}

// Renderer draws a World with the painter's algorithm.
type Renderer struct {
	opts rendererOptions
}

// NewRenderer creates a renderer. It fails when an option is out of range.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: o}, nil
}

// ProjectionDistance returns the distance to the projection plane.
func (r *Renderer) ProjectionDistance() float64 { return r.opts.projDist }

// OutlineWidth returns the stroke width of outlined faces.
func (r *Renderer) OutlineWidth() float64 { return r.opts.outlineWidth }

// Background returns the colour filled behind each frame; zero alpha means
// none.
func (r *Renderer) Background() color.NRGBA { return r.opts.background }

// Margin returns the margin used by OptimalDistance.
func (r *Renderer) Margin() float64 { return r.opts.margin }

// OptimalDistance returns the camera distance that fits a scene of the given
// dimensions into target using the renderer's projection distance and
// margin.
func (r *Renderer) OptimalDistance(target Size2D, dims Dimension3D) (float64, error) {
	return OptimalDistance(target, dims, r.opts.projDist, r.opts.margin)
}

// Render draws w as seen from vp into bounds on canvas.
//
// Faces are drawn farthest first. Faces facing away from the camera are
// skipped unless double-sided; the rest are flat shaded against the world's
// sun direction. The canvas origin is moved to the centre of bounds while
// drawing and drawing is clipped to bounds; the canvas state is restored
// before Render returns.
//
// Render checks ctx between stages and periodically while drawing; a
// cancelled frame returns ctx.Err() and should be discarded.
func (r *Renderer) Render(ctx context.Context, w *World, vp *ViewPoint3D, canvas Canvas, bounds Rect) (RenderInfo, error) {
	switch {
	case w == nil:
		return RenderInfo{}, ErrNilWorld
	case vp == nil:
		return RenderInfo{}, ErrNilCamera
	case canvas == nil:
		return RenderInfo{}, ErrNilCanvas
	case bounds.Empty():
		return RenderInfo{}, ErrEmptyBounds
	}

	cam := vp.Snapshot()
	eye := w.EyeCoordinates(cam)
	proj := w.ProjectedPoints(eye, r.opts.projDist)
	faces := SortByDepth(w.Faces(), eye)
	if err := ctx.Err(); err != nil {
		return RenderInfo{}, err
	}

	info := RenderInfo{Faces: len(faces)}
	canvas.Push()
	defer canvas.Pop()
	canvas.ClipRect(bounds)
	if r.opts.background.A != 0 {
		canvas.FillPolygon(rectPolygon(bounds), r.opts.background)
	}
	cx, cy := bounds.Center()
	canvas.Translate(cx, cy)

	ext := newExtent()
	buf := make([]Point2D, 0, 8)
	for i, f := range faces {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return info, err
			}
		}
		if drawn := r.drawFace(canvas, w.sun, f, eye, proj, buf[:0], &info); drawn != nil {
			ext.add(drawn)
			buf = drawn
		}
	}
	info.Extent = ext.rect(cx, cy)

	Logger().Debug("graphics3d: frame rendered",
		slog.Int("faces", info.Faces),
		slog.Int("drawn", info.Drawn),
		slog.Int("culled", info.Culled),
		slog.Int("clipped", info.Clipped),
		slog.Int("degenerate", info.Degenerate))
	return info, nil
}

// drawFace culls, shades and draws one face. It returns the projected
// polygon when the face was drawn and nil otherwise.
func (r *Renderer) drawFace(canvas Canvas, sun Point3D, f WorldFace, eye []Point3D, proj Projection, pts []Point2D, info *RenderInfo) []Point2D {
	if f.Face.Invisible() {
		info.Transparent++
		return nil
	}
	for i := range f.Face.vertices {
		g := f.GlobalIndex(i)
		if proj.Clipped[g] {
			info.Clipped++
			return nil
		}
		pts = append(pts, proj.Points[g])
	}

	area := Area2(pts[0], pts[1], pts[2])
	back := area <= 0
	if back && !f.Face.doubleSided {
		info.Culled++
		return nil
	}

	normal, ok := f.Face.Normal(eye, f.Offset)
	if !ok {
		info.Degenerate++
		Logger().Warn("graphics3d: skipping degenerate face",
			slog.Int("object", f.Object),
			slog.Int("vertices", f.Face.VertexCount()))
		return nil
	}
	if back {
		normal = normal.Scale(-1)
	}

	c := ShadeColor(f.Face.color, Shade(normal, sun))
	canvas.FillPolygon(pts, c)
	if f.Face.outline {
		canvas.StrokePolygon(pts, c, r.opts.outlineWidth)
	}
	info.Drawn++
	return pts
}

// Shade returns the flat shading intensity of a face with unit normal n lit
// from unit direction sun: (n·sun + 1) / 2, in [0, 1].
func Shade(n, sun Point3D) float64 {
	return clamp((n.Dot(sun)+1)/2, 0, 1)
}

// ShadeColor scales the RGB channels of c by shade, leaving alpha alone.
func ShadeColor(c color.NRGBA, shade float64) color.NRGBA {
	shade = clamp(shade, 0, 1)
	return color.NRGBA{
		R: uint8(math.Round(float64(c.R) * shade)),
		G: uint8(math.Round(float64(c.G) * shade)),
		B: uint8(math.Round(float64(c.B) * shade)),
		A: c.A,
	}
}

func rectPolygon(r Rect) []Point2D {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	return []Point2D{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
}

type extent struct {
	minX, minY, maxX, maxY float64
}

func newExtent() extent {
	return extent{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
}

func (e *extent) add(pts []Point2D) {
	for _, p := range pts {
		x, y := float64(p.X), float64(p.Y)
		e.minX, e.maxX = math.Min(e.minX, x), math.Max(e.maxX, x)
		e.minY, e.maxY = math.Min(e.minY, y), math.Max(e.maxY, y)
	}
}

func (e extent) rect(dx, dy float64) Rect {
	if e.minX > e.maxX {
		return Rect{}
	}
	return Rect{X: e.minX + dx, Y: e.minY + dy, W: e.maxX - e.minX, H: e.maxY - e.minY}
}

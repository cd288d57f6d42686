package raster

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/fulldump/chart3d/graphics3d"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func rect(x0, y0, x1, y1 float32) []graphics3d.Point2D {
	return []graphics3d.Point2D{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func pixel(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestCanvas_FillPolygon(t *testing.T) {
	c := NewRGBA(20, 20)
	c.FillPolygon(rect(5, 5, 15, 15), red)

	if got := pixel(c, 10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := pixel(c, 2, 2); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestCanvas_FillPolygonIgnoresTransparent(t *testing.T) {
	c := NewRGBA(10, 10)
	c.FillPolygon(rect(0, 0, 10, 10), color.NRGBA{R: 255})
	if got := pixel(c, 5, 5); got.A != 0 {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestCanvas_TranslatePushPop(t *testing.T) {
	c := NewRGBA(20, 20)
	c.Push()
	c.Translate(10, 10)
	c.FillPolygon(rect(0, 0, 5, 5), red)
	c.Pop()
	c.FillPolygon(rect(0, 0, 5, 5), blue)

	if got := pixel(c, 12, 12); got.R != 255 {
		t.Errorf("translated pixel = %v, want red", got)
	}
	if got := pixel(c, 2, 2); got.B != 255 {
		t.Errorf("restored pixel = %v, want blue", got)
	}
}

func TestCanvas_ClipRect(t *testing.T) {
	c := NewRGBA(20, 20)
	c.Push()
	c.Translate(5, 5)
	c.ClipRect(graphics3d.Rect{X: 0, Y: 0, W: 5, H: 5})
	c.FillPolygon(rect(-100, -100, 100, 100), red)
	c.Pop()

	if got := pixel(c, 7, 7); got.R != 255 {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
	for _, p := range [][2]int{{4, 4}, {10, 10}, {0, 19}} {
		if got := pixel(c, p[0], p[1]); got.A != 0 {
			t.Errorf("pixel %v outside clip = %v, want transparent", p, got)
		}
	}
}

func TestCanvas_UnmatchedPop(t *testing.T) {
	c := NewRGBA(4, 4)
	c.Pop()
	c.FillPolygon(rect(0, 0, 4, 4), red)
	if got := pixel(c, 1, 1); got.R != 255 {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestCanvas_StrokeHairline(t *testing.T) {
	c := NewRGBA(20, 20)
	c.StrokePolygon([]graphics3d.Point2D{{X: 2, Y: 5}, {X: 12, Y: 5}}, red, 1)

	for x := 2; x <= 12; x++ {
		if got := pixel(c, x, 5); got.R != 255 {
			t.Fatalf("pixel (%d, 5) = %v, want red", x, got)
		}
	}
	if got := pixel(c, 7, 8); got.A != 0 {
		t.Errorf("pixel off the line = %v, want transparent", got)
	}
}

func TestCanvas_StrokeWide(t *testing.T) {
	c := NewRGBA(20, 20)
	c.StrokePolygon([]graphics3d.Point2D{{X: 2, Y: 10}, {X: 18, Y: 10}}, blue, 6)

	for _, y := range []int{8, 9, 10, 11} {
		if got := pixel(c, 10, y); got.B != 255 {
			t.Errorf("pixel (10, %d) = %v, want blue", y, got)
		}
	}
	if got := pixel(c, 10, 2); got.A != 0 {
		t.Errorf("pixel far from the line = %v, want transparent", got)
	}
}

func TestBlendPixel_HalfAlpha(t *testing.T) {
	c := NewRGBA(1, 1)
	c.Clear(white)
	blendPixel(c.Image(), 0, 0, color.NRGBA{A: 128})

	got := pixel(c, 0, 0)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("blended pixel = %v, want mid grey", got)
	}
}

func square(t *testing.T, z float64, c color.NRGBA) *graphics3d.Object3D {
	t.Helper()
	o := graphics3d.NewObject3D(c, false)
	o.AddVertexXYZ(-1, -1, z)
	o.AddVertexXYZ(1, -1, z)
	o.AddVertexXYZ(1, 1, z)
	o.AddVertexXYZ(-1, 1, z)
	if err := o.AddFaceIndices(0, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	return o
}

func renderScene(t *testing.T, canvas graphics3d.Canvas, objs ...*graphics3d.Object3D) graphics3d.RenderInfo {
	t.Helper()
	w := graphics3d.NewWorld()
	if err := w.Add(objs...); err != nil {
		t.Fatal(err)
	}
	vp, err := graphics3d.NewViewPoint3D(0, 0, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	r, err := graphics3d.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	info, err := r.Render(context.Background(), w, vp, canvas, graphics3d.Rect{W: 400, H: 300})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return info
}

func TestRender_PainterNearestWins(t *testing.T) {
	c := NewRGBA(400, 300)
	// Insertion order puts the near square first; depth sorting must still
	// draw it last.
	info := renderScene(t, c, square(t, 1, blue), square(t, -1, red))
	if info.Drawn != 2 {
		t.Fatalf("Drawn = %d, want 2", info.Drawn)
	}

	center := pixel(c, 200, 150)
	if center.R != 0 || center.B < 200 {
		t.Errorf("centre pixel = %v, want the near blue square", center)
	}
	// Covered only by the larger, nearer square.
	if got := pixel(c, 350, 150); got.B < 200 {
		t.Errorf("edge pixel = %v, want blue", got)
	}
	if got := pixel(c, 5, 5); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestRender_EmptyWorldBackground(t *testing.T) {
	c := NewRGBA(40, 30)
	r, err := graphics3d.NewRenderer(graphics3d.WithBackground(white))
	if err != nil {
		t.Fatal(err)
	}
	vp := graphics3d.DefaultViewPoint()
	info, err := r.Render(context.Background(), graphics3d.NewWorld(), vp, c, graphics3d.Rect{X: 10, Y: 10, W: 20, H: 10})
	if err != nil {
		t.Fatal(err)
	}
	if info.Drawn != 0 {
		t.Errorf("Drawn = %d, want 0", info.Drawn)
	}
	if got := pixel(c, 15, 15); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel inside bounds = %v, want white", got)
	}
	if got := pixel(c, 5, 5); got.A != 0 {
		t.Errorf("pixel outside bounds = %v, want transparent", got)
	}
}

func TestRecorder_ReplayMatchesDirect(t *testing.T) {
	direct := NewRGBA(400, 300)
	renderScene(t, direct, square(t, 1, blue), square(t, -1, red))

	rec := &Recorder{}
	renderScene(t, rec, square(t, 1, blue), square(t, -1, red))
	replayed := NewRGBA(400, 300)
	rec.Replay(replayed)

	if !bytes.Equal(direct.Image().Pix, replayed.Image().Pix) {
		t.Error("replayed frame differs from direct rendering")
	}
	if n := rec.Count(OpFill); n != 2 {
		t.Errorf("Count(OpFill) = %d, want 2", n)
	}
	if rec.Count(OpPush) != rec.Count(OpPop) {
		t.Errorf("unbalanced push/pop: %d/%d", rec.Count(OpPush), rec.Count(OpPop))
	}
	if got := rec.Ops[len(rec.Ops)-1].Kind; got != OpPop {
		t.Errorf("last op = %v, want pop", got)
	}
}

func TestRecorder_KeepsEachFaceOutline(t *testing.T) {
	rec := &Recorder{}
	renderScene(t, rec, square(t, 1, blue), square(t, -1, red))

	var fills []Op
	for _, op := range rec.Ops {
		if op.Kind == OpFill {
			fills = append(fills, op)
		}
	}
	if len(fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(fills))
	}
	// The far square is drawn first and projects smaller. Had the renderer's
	// point buffer leaked into the first op, both would hold the near outline.
	far, near := fills[0].Points[0].X, fills[1].Points[0].X
	if far == near || far*far >= near*near {
		t.Errorf("first vertex x: far %v, near %v", far, near)
	}
}

func TestRecorder_CopiesPoints(t *testing.T) {
	rec := &Recorder{}
	pts := rect(0, 0, 1, 1)
	rec.FillPolygon(pts, red)
	pts[0].X = 99
	if rec.Ops[0].Points[0].X != 0 {
		t.Error("recorded points alias the caller's slice")
	}
	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Errorf("len(Ops) after Reset = %d", len(rec.Ops))
	}
}

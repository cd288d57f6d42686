package raster

import (
	"fmt"
	"image/color"

	"github.com/fulldump/chart3d/graphics3d"
)

// OpKind identifies a recorded canvas call.
type OpKind int

const (
	OpPush OpKind = iota
	OpPop
	OpTranslate
	OpClip
	OpFill
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpTranslate:
		return "translate"
	case OpClip:
		return "clip"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded canvas call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points []graphics3d.Point2D
	Color  color.NRGBA
	Width  float64
	DX, DY float64
	Rect   graphics3d.Rect
}

// Recorder is a graphics3d.Canvas that records calls instead of drawing
// them. It is used to inspect draw order and to replay a frame onto
// another canvas.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Push() { r.Ops = append(r.Ops, Op{Kind: OpPush}) }

func (r *Recorder) Pop() { r.Ops = append(r.Ops, Op{Kind: OpPop}) }

func (r *Recorder) Translate(dx, dy float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, DX: dx, DY: dy})
}

func (r *Recorder) ClipRect(rect graphics3d.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClip, Rect: rect})
}

// FillPolygon records a copy of pts; the renderer reuses its buffers.
func (r *Recorder) FillPolygon(pts []graphics3d.Point2D, col color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Points: append([]graphics3d.Point2D(nil), pts...), Color: col})
}

func (r *Recorder) StrokePolygon(pts []graphics3d.Point2D, col color.NRGBA, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Points: append([]graphics3d.Point2D(nil), pts...), Color: col, Width: width})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Replay issues the recorded calls on dst in order.
func (r *Recorder) Replay(dst graphics3d.Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpPush:
			dst.Push()
		case OpPop:
			dst.Pop()
		case OpTranslate:
			dst.Translate(op.DX, op.DY)
		case OpClip:
			dst.ClipRect(op.Rect)
		case OpFill:
			dst.FillPolygon(op.Points, op.Color)
		case OpStroke:
			dst.StrokePolygon(op.Points, op.Color, op.Width)
		}
	}
}

var _ graphics3d.Canvas = (*Recorder)(nil)

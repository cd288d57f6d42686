package graphics3d

import (
	"fmt"
	"image/color"
)

// Face is a planar polygon of an Object3D. It references its vertices by
// index into the owning object's vertex list, in counter-clockwise order as
// seen from the visible side.
type Face struct {
	vertices    []int
	color       color.NRGBA
	outline     bool
	doubleSided bool
}

// NewFace creates a face over the given local vertex indices. A face with a
// fully transparent color is never drawn; use it for structural faces.
func NewFace(vertices []int, c color.NRGBA, outline bool) (*Face, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	for _, v := range vertices {
		if v < 0 {
			return nil, fmt.Errorf("%w: %d", ErrVertexIndex, v)
		}
	}
	vs := make([]int, len(vertices))
	copy(vs, vertices)
	return &Face{vertices: vs, color: c, outline: outline}, nil
}

// DoubleSided returns a copy of the face that is drawn from both sides.
func (f *Face) DoubleSided() *Face {
	g := *f
	g.doubleSided = true
	return &g
}

// IsDoubleSided reports whether back-face culling is skipped for the face.
func (f *Face) IsDoubleSided() bool { return f.doubleSided }

// Vertices returns the local vertex indices. The slice must not be modified.
func (f *Face) Vertices() []int { return f.vertices }

// VertexCount returns the number of vertices of the face.
func (f *Face) VertexCount() int { return len(f.vertices) }

// Color returns the fill color.
func (f *Face) Color() color.NRGBA { return f.color }

// Outline reports whether the polygon is stroked as well as filled.
func (f *Face) Outline() bool { return f.outline }

// Invisible reports whether the face carries the no-color sentinel.
func (f *Face) Invisible() bool { return f.color.A == 0 }

// maxIndex returns the largest referenced vertex index.
func (f *Face) maxIndex() int {
	m := -1
	for _, v := range f.vertices {
		if v > m {
			m = v
		}
	}
	return m
}

// Normal returns the unit normal of the face computed from its first three
// vertices in pts, where pts is indexed by local vertex index plus offset.
// ok is false for a degenerate face.
func (f *Face) Normal(pts []Point3D, offset int) (Point3D, bool) {
	a := pts[offset+f.vertices[0]]
	b := pts[offset+f.vertices[1]]
	c := pts[offset+f.vertices[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// AverageZ returns the mean Z of the face's vertices in pts.
func (f *Face) AverageZ(pts []Point3D, offset int) float64 {
	var sum float64
	for _, v := range f.vertices {
		sum += pts[offset+v].Z
	}
	return sum / float64(len(f.vertices))
}

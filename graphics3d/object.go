package graphics3d

import (
	"fmt"
	"image/color"
	"math"
)

// Object3D is a mesh: an append-only list of vertices plus faces that
// reference them by local index.
type Object3D struct {
	vertices []Point3D
	faces    []*Face
	color    color.NRGBA
	outline  bool
}

// NewObject3D creates an empty object. c and outline are used for faces
// added with AddFaceIndices.
func NewObject3D(c color.NRGBA, outline bool) *Object3D {
	return &Object3D{color: c, outline: outline}
}

// Color returns the default face color of the object.
func (o *Object3D) Color() color.NRGBA { return o.color }

// AddVertex appends a vertex and returns its local index.
func (o *Object3D) AddVertex(p Point3D) int {
	o.vertices = append(o.vertices, p)
	return len(o.vertices) - 1
}

// AddVertexXYZ appends a vertex and returns its local index.
func (o *Object3D) AddVertexXYZ(x, y, z float64) int {
	return o.AddVertex(Point3D{X: x, Y: y, Z: z})
}

// Translate moves every vertex by d.
func (o *Object3D) Translate(d Point3D) {
	for i := range o.vertices {
		o.vertices[i] = o.vertices[i].Add(d)
	}
}

// VertexCount returns the number of vertices.
func (o *Object3D) VertexCount() int { return len(o.vertices) }

// Vertex returns the vertex at local index i.
func (o *Object3D) Vertex(i int) Point3D { return o.vertices[i] }

// Vertices returns the vertex list. The slice must not be modified.
func (o *Object3D) Vertices() []Point3D { return o.vertices }

// FaceCount returns the number of faces.
func (o *Object3D) FaceCount() int { return len(o.faces) }

// Faces returns the face list. The slice must not be modified.
func (o *Object3D) Faces() []*Face { return o.faces }

// AddFace appends f. Every vertex index of f must refer to an existing
// vertex of o.
func (o *Object3D) AddFace(f *Face) error {
	if f == nil {
		return ErrNilFace
	}
	if m := f.maxIndex(); m >= len(o.vertices) {
		return fmt.Errorf("%w: index %d, object has %d vertices", ErrVertexIndex, m, len(o.vertices))
	}
	o.faces = append(o.faces, f)
	return nil
}

// AddFaceIndices appends a face using the object's default color and
// outline flag.
func (o *Object3D) AddFaceIndices(indices ...int) error {
	f, err := NewFace(indices, o.color, o.outline)
	if err != nil {
		return err
	}
	return o.AddFace(f)
}

// Bounds returns the minimum and maximum corners of the vertices. ok is
// false for an object without vertices.
func (o *Object3D) Bounds() (lo, hi Point3D, ok bool) {
	if len(o.vertices) == 0 {
		return Point3D{}, Point3D{}, false
	}
	lo, hi = o.vertices[0], o.vertices[0]
	for _, v := range o.vertices[1:] {
		lo = Point3D{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = Point3D{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return lo, hi, true
}

// addOutwardFace adds a triangle or polygon, reversing its winding when its
// normal points towards interior.
func (o *Object3D) addOutwardFace(interior Point3D, indices ...int) error {
	a, b, c := o.vertices[indices[0]], o.vertices[indices[1]], o.vertices[indices[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	var centroid Point3D
	for _, i := range indices {
		centroid = centroid.Add(o.vertices[i])
	}
	centroid = centroid.Scale(1 / float64(len(indices)))
	if n.Dot(centroid.Sub(interior)) < 0 {
		for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}
	return o.AddFaceIndices(indices...)
}

// newellArea returns the area of the (possibly non-planar) polygon through
// the given vertices.
func newellArea(pts []Point3D) float64 {
	var n Point3D
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Length() / 2
}

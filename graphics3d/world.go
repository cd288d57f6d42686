package graphics3d

import "fmt"

// DefaultSunDirection is the eye-space light direction a new World uses:
// up, to the right and behind the viewer.
var DefaultSunDirection = mustNormalize(Point3D{X: 2, Y: 3, Z: 10})

// World is the scene for one frame: an ordered list of objects and the
// direction of the light that shades them.
type World struct {
	objects []*Object3D
	sun     Point3D
}

// NewWorld creates an empty world lit from DefaultSunDirection.
func NewWorld() *World {
	return &World{sun: DefaultSunDirection}
}

// Add appends objects to the world. Nil objects are rejected.
func (w *World) Add(objs ...*Object3D) error {
	for _, o := range objs {
		if o == nil {
			return ErrNilObject
		}
	}
	w.objects = append(w.objects, objs...)
	return nil
}

// Objects returns the objects in insertion order. The slice must not be
// modified.
func (w *World) Objects() []*Object3D { return w.objects }

// SunDirection returns the unit light direction in eye space.
func (w *World) SunDirection() Point3D { return w.sun }

// SetSunDirection sets the light direction; it is normalised.
func (w *World) SetSunDirection(dir Point3D) error {
	n, ok := dir.Normalize()
	if !ok {
		return fmt.Errorf("%w: sun %+v", ErrZeroVector, dir)
	}
	w.sun = n
	return nil
}

// VertexCount returns the total number of vertices of all objects.
func (w *World) VertexCount() int {
	n := 0
	for _, o := range w.objects {
		n += o.VertexCount()
	}
	return n
}

// FaceCount returns the total number of faces of all objects.
func (w *World) FaceCount() int {
	n := 0
	for _, o := range w.objects {
		n += o.FaceCount()
	}
	return n
}

// Offsets returns, for each object, the global index of its first vertex:
// the cumulative vertex count of the objects before it.
func (w *World) Offsets() []int {
	offsets := make([]int, len(w.objects))
	n := 0
	for i, o := range w.objects {
		offsets[i] = n
		n += o.VertexCount()
	}
	return offsets
}

// WorldFace is a face placed in the world's global vertex index space.
type WorldFace struct {
	Face   *Face
	Object int // index of the owning object in the world
	Offset int // global index of the owning object's first vertex
}

// GlobalIndex returns the global index of the face's i-th vertex.
func (wf WorldFace) GlobalIndex(i int) int {
	return wf.Offset + wf.Face.vertices[i]
}

// Faces flattens the faces of all objects, in object then face order. The
// offsets are recomputed on every call; no face is modified.
func (w *World) Faces() []WorldFace {
	out := make([]WorldFace, 0, w.FaceCount())
	offsets := w.Offsets()
	for i, o := range w.objects {
		for _, f := range o.faces {
			out = append(out, WorldFace{Face: f, Object: i, Offset: offsets[i]})
		}
	}
	return out
}

// EyeCoordinates transforms every vertex into eye space, in global index
// order.
func (w *World) EyeCoordinates(t EyeTransform) []Point3D {
	out := make([]Point3D, 0, w.VertexCount())
	for _, o := range w.objects {
		for _, v := range o.vertices {
			out = append(out, t.WorldToEye(v))
		}
	}
	return out
}

// ProjectedPoints projects eye-space points onto the plane at projDist.
func (w *World) ProjectedPoints(eye []Point3D, projDist float64) Projection {
	p := Projection{
		Points:  make([]Point2D, len(eye)),
		Clipped: make([]bool, len(eye)),
	}
	for i, e := range eye {
		pt, ok := Project(e, projDist)
		p.Points[i] = pt
		p.Clipped[i] = !ok
	}
	return p
}

// Bounds returns the minimum and maximum corners over all objects. ok is
// false when the world has no vertices.
func (w *World) Bounds() (lo, hi Point3D, ok bool) {
	for _, o := range w.objects {
		olo, ohi, has := o.Bounds()
		if !has {
			continue
		}
		if !ok {
			lo, hi, ok = olo, ohi, true
			continue
		}
		lo = Point3D{X: min(lo.X, olo.X), Y: min(lo.Y, olo.Y), Z: min(lo.Z, olo.Z)}
		hi = Point3D{X: max(hi.X, ohi.X), Y: max(hi.Y, ohi.Y), Z: max(hi.Z, ohi.Z)}
	}
	return lo, hi, ok
}

func mustNormalize(p Point3D) Point3D {
	n, ok := p.Normalize()
	if !ok {
		panic("graphics3d: zero vector")
	}
	return n
}

package graphics3d

import (
	"fmt"
	"image/color"
	"math"
)

// boxFaces lists the faces of a box over the corner order used by Prism:
//
//	0 (x0,y0,z0)  1 (x1,y0,z0)  2 (x1,y1,z0)  3 (x0,y1,z0)
//	4 (x0,y0,z1)  5 (x1,y0,z1)  6 (x1,y1,z1)  7 (x0,y1,z1)
//
// Each face is counter-clockwise seen from outside.
var boxFaces = [6][4]int{
	{4, 5, 6, 7}, // +z
	{0, 3, 2, 1}, // -z
	{1, 2, 6, 5}, // +x
	{0, 4, 7, 3}, // -x
	{3, 7, 6, 2}, // +y
	{0, 1, 5, 4}, // -y
}

const areaEpsilon = 1e-12

// Box creates an axis-aligned box centred on (x, y, z) with the given
// extents. Faces with zero area are omitted: one zero extent leaves the two
// opposing faces of a sheet, two or more leave no faces at all.
func Box(x, xdim, y, ydim, z, zdim float64, c color.NRGBA) (*Object3D, error) {
	for _, d := range []float64{xdim, ydim, zdim} {
		if !(d >= 0) || !finite(d) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, d)
		}
	}
	x0, x1 := x-xdim/2, x+xdim/2
	y0, y1 := y-ydim/2, y+ydim/2
	z0, z1 := z-zdim/2, z+zdim/2
	return Prism([8]Point3D{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}, c, false), nil
}

// Cube creates a box with equal extents centred on (x, y, z).
func Cube(x, y, z, size float64, c color.NRGBA) (*Object3D, error) {
	return Box(x, size, y, size, z, size, c)
}

// Bar creates a value bar standing on base and reaching top (which may be
// below base), centred on x and z.
func Bar(width, x, base, top, z, depth float64, c color.NRGBA) (*Object3D, error) {
	lo, hi := math.Min(base, top), math.Max(base, top)
	return Box(x, width, (lo+hi)/2, hi-lo, z, depth, c)
}

// Prism creates an object with box topology over arbitrary corners, in the
// corner order documented on boxFaces. The corners must describe a solid
// with the same orientation as an axis-aligned box (x0<x1, y0<=y1, z0<z1
// along each edge). Consecutive coincident vertices are dropped from each
// face and faces left with no area are omitted.
func Prism(corners [8]Point3D, c color.NRGBA, outline bool) *Object3D {
	obj := NewObject3D(c, outline)
	for _, p := range corners {
		obj.AddVertex(p)
	}
	for _, bf := range boxFaces {
		idx := dedupe(obj.vertices, bf[:])
		if len(idx) < 3 {
			continue
		}
		pts := make([]Point3D, len(idx))
		for i, v := range idx {
			pts[i] = obj.vertices[v]
		}
		if newellArea(pts) <= areaEpsilon {
			continue
		}
		// Indices are in range by construction.
		_ = obj.AddFaceIndices(idx...)
	}
	return obj
}

// dedupe drops vertices that coincide with their predecessor (cyclically).
func dedupe(vs []Point3D, idx []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if len(out) > 0 && vs[out[len(out)-1]] == vs[i] {
			continue
		}
		out = append(out, i)
	}
	for len(out) > 1 && vs[out[0]] == vs[out[len(out)-1]] {
		out = out[:len(out)-1]
	}
	return out
}

// YSheet creates a double-sided horizontal square of the given size centred
// on (x, y, z).
func YSheet(size, x, y, z float64, c color.NRGBA) (*Object3D, error) {
	if !(size > 0) || !finite(size) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, size)
	}
	h := size / 2
	obj := NewObject3D(c, false)
	obj.AddVertexXYZ(x-h, y, z-h)
	obj.AddVertexXYZ(x-h, y, z+h)
	obj.AddVertexXYZ(x+h, y, z+h)
	obj.AddVertexXYZ(x+h, y, z-h)
	f, err := NewFace([]int{0, 1, 2, 3}, c, false)
	if err != nil {
		return nil, err
	}
	return obj, obj.AddFace(f.DoubleSided())
}

// Tetrahedron creates a regular tetrahedron inscribed in a cube of the given
// size centred on (x, y, z).
func Tetrahedron(size, x, y, z float64, c color.NRGBA) (*Object3D, error) {
	if !(size > 0) || !finite(size) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, size)
	}
	h := size / 2
	center := Point3D{X: x, Y: y, Z: z}
	obj := NewObject3D(c, false)
	for _, s := range [4][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}} {
		obj.AddVertex(center.Add(Point3D{X: s[0] * h, Y: s[1] * h, Z: s[2] * h}))
	}
	for skip := 0; skip < 4; skip++ {
		idx := make([]int, 0, 3)
		for i := 0; i < 4; i++ {
			if i != skip {
				idx = append(idx, i)
			}
		}
		if err := obj.addOutwardFace(center, idx...); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Octahedron creates a regular octahedron whose vertices lie size/2 from
// (x, y, z) along each axis.
func Octahedron(size, x, y, z float64, c color.NRGBA) (*Object3D, error) {
	if !(size > 0) || !finite(size) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, size)
	}
	h := size / 2
	center := Point3D{X: x, Y: y, Z: z}
	obj := NewObject3D(c, false)
	// +x, -x, +y, -y, +z, -z
	obj.AddVertexXYZ(x+h, y, z)
	obj.AddVertexXYZ(x-h, y, z)
	obj.AddVertexXYZ(x, y+h, z)
	obj.AddVertexXYZ(x, y-h, z)
	obj.AddVertexXYZ(x, y, z+h)
	obj.AddVertexXYZ(x, y, z-h)
	for _, xi := range []int{0, 1} {
		for _, yi := range []int{2, 3} {
			for _, zi := range []int{4, 5} {
				if err := obj.addOutwardFace(center, xi, yi, zi); err != nil {
					return nil, err
				}
			}
		}
	}
	return obj, nil
}

// PieSegment creates a wedge of a cylinder standing on base with the given
// height, covering angles angle1 to angle2 (radians, counter-clockwise seen
// from above, 0 along +X). The curved side is approximated by steps of at
// most inc radians. explodeRadius moves the wedge away from the centre along
// its middle angle.
func PieSegment(radius, explodeRadius, base, height, angle1, angle2, inc float64, c color.NRGBA) (*Object3D, error) {
	switch {
	case !(radius > 0) || !finite(radius):
		return nil, fmt.Errorf("%w: radius=%v", ErrInvalidExtent, radius)
	case !(height >= 0) || !finite(height):
		return nil, fmt.Errorf("%w: height=%v", ErrInvalidExtent, height)
	case !(inc > 0):
		return nil, fmt.Errorf("%w: inc=%v", ErrInvalidExtent, inc)
	case !(angle2 > angle1):
		return nil, fmt.Errorf("%w: angles %v..%v", ErrInvalidExtent, angle1, angle2)
	}
	full := angle2-angle1 >= 2*math.Pi-1e-9
	if full {
		angle2 = angle1 + 2*math.Pi
	}
	mid := (angle1 + angle2) / 2
	cx, cz := explodeRadius*math.Cos(mid), -explodeRadius*math.Sin(mid)
	top := base + height

	obj := NewObject3D(c, false)
	cb := obj.AddVertexXYZ(cx, base, cz)
	ct := obj.AddVertexXYZ(cx, top, cz)
	var bottoms, tops []int
	steps := max(1, int(math.Ceil((angle2-angle1)/inc-1e-9)))
	if full {
		steps = max(steps, 3)
	}
	for i := 0; i <= steps; i++ {
		a := angle1 + (angle2-angle1)*float64(i)/float64(steps)
		x, z := cx+radius*math.Cos(a), cz-radius*math.Sin(a)
		bottoms = append(bottoms, obj.AddVertexXYZ(x, base, z))
		tops = append(tops, obj.AddVertexXYZ(x, top, z))
	}
	if full {
		// Close the ring on the first vertices.
		bottoms[steps], tops[steps] = bottoms[0], tops[0]
	}

	topFace := append([]int{ct}, tops...)
	bottomFace := []int{cb}
	for i := len(bottoms) - 1; i >= 0; i-- {
		bottomFace = append(bottomFace, bottoms[i])
	}
	if full {
		// A closed ring needs no centre vertex.
		topFace = append([]int(nil), tops[:steps]...)
		bottomFace = bottomFace[2:]
	}
	faces := [][]int{topFace, bottomFace}
	if height > 0 {
		for i := 0; i < steps; i++ {
			faces = append(faces, []int{bottoms[i], bottoms[i+1], tops[i+1], tops[i]})
		}
		if !full {
			faces = append(faces,
				[]int{cb, bottoms[0], tops[0], ct},
				[]int{cb, ct, tops[steps], bottoms[steps]},
			)
		}
	}
	for _, f := range faces {
		if err := obj.AddFaceIndices(f...); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

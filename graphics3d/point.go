package graphics3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is a position or direction in 3D space.
type Point3D struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3D.
func Pt3(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Origin is the world origin, the point every ViewPoint3D looks at.
var Origin = Point3D{}

// Spherical creates a point from spherical coordinates. theta is the
// azimuth around the Y axis measured from +Z towards +X, phi is the
// elevation above the XZ plane and rho the distance from the origin.
func Spherical(theta, phi, rho float64) Point3D {
	cp := math.Cos(phi)
	return Point3D{
		X: rho * cp * math.Sin(theta),
		Y: rho * math.Sin(phi),
		Z: rho * cp * math.Cos(theta),
	}
}

// Rho returns the distance from the origin.
func (p Point3D) Rho() float64 {
	return p.Length()
}

// Theta returns the azimuth of the point, see Spherical.
func (p Point3D) Theta() float64 {
	return math.Atan2(p.X, p.Z)
}

// Phi returns the elevation of the point, see Spherical.
func (p Point3D) Phi() float64 {
	rho := p.Length()
	if rho == 0 {
		return 0
	}
	return math.Asin(clamp(p.Y/rho, -1, 1))
}

// Vec converts the point to a mathgl vector.
func (p Point3D) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func fromVec(v mgl64.Vec3) Point3D {
	return Point3D{X: v[0], Y: v[1], Z: v[2]}
}

// Add returns p+q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p-q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point3D) Scale(s float64) Point3D {
	return Point3D{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product.
func (p Point3D) Dot(q Point3D) float64 {
	return p.Vec().Dot(q.Vec())
}

// Cross returns the cross product p×q.
func (p Point3D) Cross(q Point3D) Point3D {
	return fromVec(p.Vec().Cross(q.Vec()))
}

// Length returns the Euclidean length.
func (p Point3D) Length() float64 {
	return p.Vec().Len()
}

// Normalize returns the unit vector in the direction of p. ok is false when
// p has (nearly) zero length, in which case the zero vector is returned.
func (p Point3D) Normalize() (n Point3D, ok bool) {
	if p.Length() < 1e-12 {
		return Point3D{}, false
	}
	return fromVec(p.Vec().Normalize()), true
}

// ApproxEqual reports whether the points are within eps on every axis.
func (p Point3D) ApproxEqual(q Point3D, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// Point2D is a projected point in canvas coordinates.
type Point2D struct {
	X, Y float32
}

// Pt2 is a convenience function to create a Point2D.
func Pt2(x, y float32) Point2D {
	return Point2D{X: x, Y: y}
}

// DistanceSq returns the squared distance to q.
func (p Point2D) DistanceSq(q Point2D) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to q.
func (p Point2D) Distance(q Point2D) float32 {
	return float32(math.Sqrt(float64(p.DistanceSq(q))))
}

// Dimension3D is the extent of a scene or object along each axis.
type Dimension3D struct {
	Width, Height, Depth float64
}

// Diagonal returns the length of the box diagonal.
func (d Dimension3D) Diagonal() float64 {
	return math.Sqrt(d.Width*d.Width + d.Height*d.Height + d.Depth*d.Depth)
}

// Size2D is the extent of a 2D viewport.
type Size2D struct {
	Width, Height float64
}

// Rect is a drawing region on the canvas, in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Center returns the centre of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

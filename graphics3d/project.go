package graphics3d

// MinDepth is the smallest distance in front of the camera, along the view
// axis, at which a point is still projected. Points closer than this (or
// behind the camera) are reported as clipped.
const MinDepth = 1e-6

// Project applies a pinhole projection onto a plane at distance projDist in
// front of the camera. The camera looks down -Z in eye space; the result is
// in canvas orientation (Y down). ok is false for points at or behind the
// camera, which would otherwise project to non-finite or mirrored
// coordinates.
func Project(eye Point3D, projDist float64) (Point2D, bool) {
	if eye.Z > -MinDepth {
		return Point2D{}, false
	}
	x := -projDist * eye.X / eye.Z
	y := projDist * eye.Y / eye.Z
	if !finite(x) || !finite(y) {
		return Point2D{}, false
	}
	return Point2D{X: float32(x), Y: float32(y)}, true
}

// Projection holds projected points aligned index-for-index with a world's
// global vertex order.
type Projection struct {
	Points []Point2D
	// Clipped[i] is true when vertex i could not be projected.
	Clipped []bool
}

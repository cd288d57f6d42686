package graphics3d

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewPoint3D is a camera looking at the world origin from spherical
// coordinates (theta, phi, rho), with an extra roll around the view axis.
//
// A ViewPoint3D is typically mutated by input handlers between frames while
// a renderer reads it. All methods are safe for concurrent use; the renderer
// takes a Snapshot once per frame so theta, phi and rho are never read torn.
type ViewPoint3D struct {
	mu    sync.RWMutex
	theta float64
	phi   float64
	rho   float64
	roll  float64
}

// NewViewPoint3D creates a camera. Angles are in radians and must be
// finite; rho must be positive and finite.
func NewViewPoint3D(theta, phi, rho, roll float64) (*ViewPoint3D, error) {
	if !(rho > 0) || !finite(rho) {
		return nil, fmt.Errorf("%w: rho=%v", ErrInvalidDistance, rho)
	}
	if !finite(theta) || !finite(phi) || !finite(roll) {
		return nil, fmt.Errorf("%w: theta=%v phi=%v roll=%v", ErrInvalidAngle, theta, phi, roll)
	}
	return &ViewPoint3D{
		theta: normalizeAngle(theta),
		phi:   normalizeAngle(phi),
		rho:   rho,
		roll:  normalizeAngle(roll),
	}, nil
}

// DefaultViewPoint returns a camera above and to the left of the scene,
// the usual starting view for charts.
func DefaultViewPoint() *ViewPoint3D {
	return &ViewPoint3D{theta: -math.Pi / 6, phi: math.Pi / 9, rho: 100}
}

// Theta returns the azimuth in radians.
func (v *ViewPoint3D) Theta() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.theta
}

// Phi returns the elevation in radians.
func (v *ViewPoint3D) Phi() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.phi
}

// Rho returns the distance from the origin.
func (v *ViewPoint3D) Rho() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rho
}

// RollAngle returns the rotation around the view axis in radians.
func (v *ViewPoint3D) RollAngle() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.roll
}

// Position returns the camera position in world coordinates.
func (v *ViewPoint3D) Position() Point3D {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Spherical(v.theta, v.phi, v.rho)
}

// SetRho sets the distance from the origin.
func (v *ViewPoint3D) SetRho(rho float64) error {
	if !(rho > 0) || !finite(rho) {
		return fmt.Errorf("%w: rho=%v", ErrInvalidDistance, rho)
	}
	v.mu.Lock()
	v.rho = rho
	v.mu.Unlock()
	return nil
}

// SetAngles replaces theta and phi. Non-finite angles are rejected and
// leave the camera unchanged.
func (v *ViewPoint3D) SetAngles(theta, phi float64) error {
	if !finite(theta) || !finite(phi) {
		return fmt.Errorf("%w: theta=%v phi=%v", ErrInvalidAngle, theta, phi)
	}
	v.mu.Lock()
	v.theta = normalizeAngle(theta)
	v.phi = normalizeAngle(phi)
	v.mu.Unlock()
	return nil
}

// PanLeftRight moves the camera around the vertical axis. Like the other
// relative moves, it ignores a non-finite delta.
func (v *ViewPoint3D) PanLeftRight(delta float64) {
	if !finite(delta) {
		return
	}
	v.mu.Lock()
	v.theta = normalizeAngle(v.theta + delta)
	v.mu.Unlock()
}

// MoveUpDown changes the elevation of the camera.
func (v *ViewPoint3D) MoveUpDown(delta float64) {
	if !finite(delta) {
		return
	}
	v.mu.Lock()
	v.phi = normalizeAngle(v.phi + delta)
	v.mu.Unlock()
}

// Roll rotates the camera around its view axis.
func (v *ViewPoint3D) Roll(delta float64) {
	if !finite(delta) {
		return
	}
	v.mu.Lock()
	v.roll = normalizeAngle(v.roll + delta)
	v.mu.Unlock()
}

// Zoom divides rho by scale, so a scale above 1 moves the camera closer
// (a pinch-out of factor scale).
func (v *ViewPoint3D) Zoom(scale float64) error {
	if !(scale > 0) || !finite(scale) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	rho := v.rho / scale
	if !(rho > 0) || !finite(rho) {
		return fmt.Errorf("%w: rho=%v", ErrInvalidDistance, rho)
	}
	v.rho = rho
	return nil
}

// Snapshot returns the world→eye transform for the current camera state.
func (v *ViewPoint3D) Snapshot() EyeTransform {
	v.mu.RLock()
	theta, phi, rho, roll := v.theta, v.phi, v.rho, v.roll
	v.mu.RUnlock()
	return NewEyeTransform(theta, phi, rho, roll)
}

// FitTo sets rho to the optimal distance for showing a scene of the given
// dimensions in the target viewport. See OptimalDistance.
func (v *ViewPoint3D) FitTo(target Size2D, dims Dimension3D, projDist, margin float64) error {
	rho, err := OptimalDistance(target, dims, projDist, margin)
	if err != nil {
		return err
	}
	return v.SetRho(rho)
}

// EyeTransform is an immutable world→eye transform.
type EyeTransform struct {
	rot mgl64.Mat3
	rho float64
}

// NewEyeTransform builds the transform for a camera at (theta, phi, rho)
// rolled by roll. Points are rotated by -theta around the vertical axis,
// then around the resulting horizontal axis to bring the camera onto +Z,
// then rolled, and finally translated by -rho along the view axis.
func NewEyeTransform(theta, phi, rho, roll float64) EyeTransform {
	azimuth := mgl64.Rotate3DY(-theta)
	elevation := mgl64.Rotate3DX(phi)
	r := mgl64.Rotate3DZ(roll)
	return EyeTransform{rot: r.Mul3(elevation).Mul3(azimuth), rho: rho}
}

// Rho returns the camera distance of the transform.
func (t EyeTransform) Rho() float64 {
	return t.rho
}

// WorldToEye converts a world point to eye coordinates.
func (t EyeTransform) WorldToEye(p Point3D) Point3D {
	e := fromVec(t.rot.Mul3x1(p.Vec()))
	e.Z -= t.rho
	return e
}

// EyeToWorld is the inverse of WorldToEye.
func (t EyeTransform) EyeToWorld(e Point3D) Point3D {
	e.Z += t.rho
	return fromVec(t.rot.Transpose().Mul3x1(e.Vec()))
}

// WorldToScreen converts a world point to projected canvas coordinates.
// ok is false when the point is at or behind the camera.
func (t EyeTransform) WorldToScreen(p Point3D, projDist float64) (Point2D, bool) {
	return Project(t.WorldToEye(p), projDist)
}

// OptimalDistance returns the camera distance at which the bounding sphere of
// a scene with the given dimensions exactly fills the usable part of the
// target viewport: min(width, height) shrunk by margin.
//
// A sphere of radius r seen from distance rho projects onto a plane at
// distance d as a disc of radius d·r/√(rho²−r²). Solving for the usable
// diameter u gives rho = r·√(1 + (2d/u)²).
func OptimalDistance(target Size2D, dims Dimension3D, projDist, margin float64) (float64, error) {
	if !(target.Width > 0) || !(target.Height > 0) {
		return 0, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, target.Width, target.Height)
	}
	if !(projDist > 0) || !finite(projDist) {
		return 0, fmt.Errorf("%w: projection distance=%v", ErrInvalidDistance, projDist)
	}
	if !(margin >= 0 && margin < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMargin, margin)
	}
	r := dims.Diagonal() / 2
	if !(r > 0) || !finite(r) {
		return 0, fmt.Errorf("%w: dimensions %+v", ErrInvalidExtent, dims)
	}
	usable := math.Min(target.Width, target.Height) * (1 - margin)
	k := 2 * projDist / usable
	return r * math.Sqrt(1+k*k), nil
}

// ProjectedSphereDiameter returns the diameter of the projection of a sphere
// of the given radius seen from distance rho through a projection plane at
// projDist. It returns +Inf when the camera is inside the sphere.
func ProjectedSphereDiameter(radius, rho, projDist float64) float64 {
	if rho <= radius {
		return math.Inf(1)
	}
	return 2 * projDist * radius / math.Sqrt(rho*rho-radius*radius)
}

// normalizeAngle maps a finite a into (-π, π].
func normalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

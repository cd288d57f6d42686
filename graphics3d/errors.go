package graphics3d

import "errors"

var (
	// ErrNilWorld is returned when a nil *World is passed to the renderer.
	ErrNilWorld = errors.New("graphics3d: nil world")

	// ErrNilCamera is returned when a nil *ViewPoint3D is passed to the renderer.
	ErrNilCamera = errors.New("graphics3d: nil viewpoint")

	// ErrNilCanvas is returned when a nil Canvas is passed to the renderer.
	ErrNilCanvas = errors.New("graphics3d: nil canvas")

	// ErrNilFace is returned when a nil *Face is added to an object.
	ErrNilFace = errors.New("graphics3d: nil face")

	// ErrNilObject is returned when a nil *Object3D is added to a world.
	ErrNilObject = errors.New("graphics3d: nil object")

	// ErrEmptyBounds is returned when the drawing bounds have no area.
	ErrEmptyBounds = errors.New("graphics3d: empty drawing bounds")

	// ErrTooFewVertices is returned for a face with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("graphics3d: face needs at least 3 vertices")

	// ErrVertexIndex is returned when a face references a vertex the object
	// does not have.
	ErrVertexIndex = errors.New("graphics3d: face vertex index out of range")

	// ErrInvalidDistance is returned for a non-positive or non-finite camera
	// or projection distance.
	ErrInvalidDistance = errors.New("graphics3d: distance must be positive and finite")

	// ErrInvalidAngle is returned for a NaN or infinite camera angle.
	ErrInvalidAngle = errors.New("graphics3d: angle must be finite")

	// ErrInvalidScale is returned for a non-positive zoom factor.
	ErrInvalidScale = errors.New("graphics3d: scale must be positive and finite")

	// ErrInvalidMargin is returned for a margin outside [0, 1).
	ErrInvalidMargin = errors.New("graphics3d: margin must be in [0, 1)")

	// ErrInvalidViewport is returned for a target viewport without area.
	ErrInvalidViewport = errors.New("graphics3d: viewport must have positive size")

	// ErrInvalidExtent is returned by factories given a negative or
	// non-finite extent.
	ErrInvalidExtent = errors.New("graphics3d: extent must be non-negative and finite")

	// ErrZeroVector is returned when a direction vector has zero length.
	ErrZeroVector = errors.New("graphics3d: zero-length direction")
)

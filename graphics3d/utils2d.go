package graphics3d

// Area2 returns twice the signed area of the triangle abc in canvas
// coordinates (Y down). The result is positive when a, b, c appear
// counter-clockwise on screen, negative when clockwise and zero when the
// points are collinear.
func Area2(a, b, c Point2D) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	return (cx-ax)*(by-ay) - (bx-ax)*(cy-ay)
}

// Side is the position of a point relative to a directed line.
type Side int

// Side values, as seen on screen.
const (
	RightOf Side = -1
	On      Side = 0
	LeftOf  Side = 1
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case LeftOf:
		return "left"
	case RightOf:
		return "right"
	default:
		return "on"
	}
}

// LineSide reports on which side of the directed line a→b the point p lies,
// as seen on screen. Points within eps of the line are On.
func LineSide(p, a, b Point2D, eps float64) Side {
	area := Area2(a, b, p)
	switch {
	case area > eps:
		return LeftOf
	case area < -eps:
		return RightOf
	default:
		return On
	}
}

// PolygonArea2 returns twice the signed area of a polygon, with the same
// sign convention as Area2.
func PolygonArea2(pts []Point2D) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	// The shoelace sum is positive for counter-clockwise in Y-up space,
	// which is clockwise on a Y-down canvas.
	return -sum
}

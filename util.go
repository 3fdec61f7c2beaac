package vector

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Equals and the other approximate comparisons. The engine itself compares coordinates exactly or against the representation error, see RepresentationError.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if f is in closed interval [lower-Epsilon,upper+Epsilon] where lower and upper can be interchanged.
func Interval(f, lower, upper float64) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	return lower-Epsilon <= f && f <= upper+Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D or 3D space. Z is zero for 2D polylines.
type Point struct {
	X, Y, Z float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Dot returns the dot product between OP and OQ in the XY plane.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ in the XY plane, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y, (1-t)*p.Z + t*q.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g; %g]", p.X, p.Y, p.Z)
}

// same2D returns true if P and Q have exactly the same x and y.
func (p Point) same2D(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// same returns true if P and Q coincide exactly in all used coordinates.
func (p Point) same(q Point, withZ bool) bool {
	return p.X == q.X && p.Y == q.Y && (!withZ || p.Z == q.Z)
}

// lessXY orders points by x and then y.
func lessXY(p, q Point) bool {
	return p.X < q.X || p.X == q.X && p.Y < q.Y
}

// dist2 returns the squared distance between P and Q in the XY plane.
func dist2(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

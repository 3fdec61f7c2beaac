package vector

import "math"

// ulpShift is subtracted from the binary exponent of a coordinate to obtain its representation error. It lies between the mantissa widths of float32 (23) and float64 (52) and was tuned empirically, changing it changes which nearby breakpoints collapse.
const ulpShift = 38

// RepresentationError returns the tolerance below which two coordinates of the magnitude of a and b are considered to be the same location. It scales with the larger magnitude of a and b, so that it stays meaningful for both small local and large projected coordinates.
func RepresentationError(a, b float64) float64 {
	m := math.Max(math.Abs(a), math.Abs(b))
	frac, exp := math.Frexp(m)
	return math.Ldexp(frac, exp-ulpShift)
}

// snapCrossing moves the computed intersection p of segment segA of line A and segment segB of line B onto the nearest of the four segment endpoints when it lies within the representation error of that endpoint. It returns the (possibly snapped) position and the squared distances from the start vertices of both segments.
func (s *sweep) snapCrossing(segA, segB int, p Point) (Point, float64, float64) {
	a, b := s.lines[0], s.lines[1]
	p.Z = 0.0
	candidates := [4]Point{a[segA], a[segA+1], b[segB], b[segB+1]}

	nearest := candidates[0]
	d := dist2(p, nearest)
	for _, c := range candidates[1:] {
		if dc := dist2(p, c); dc < d {
			nearest, d = c, dc
		}
	}

	if eps := RepresentationError(nearest.X, nearest.Y); d <= eps*eps {
		p.X, p.Y = nearest.X, nearest.Y
	}
	return p, dist2(p, a[segA]), dist2(p, b[segB])
}

// onSegment returns true if p lies on segment a-b within the representation error.
func onSegment(p, a, b Point) bool {
	eps := RepresentationError(p.X, p.Y)
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0.0 {
		return dist2(p, a) <= eps*eps
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	return dist2(p, a.Interpolate(b, t)) <= eps*eps
}

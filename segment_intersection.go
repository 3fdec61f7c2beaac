package vector

// Intersections between two line segments. We consider six cases: the segments do not touch, they intersect in a single point (crossing or touching at an endpoint), or they are collinear and overlap partially, one contains the other, or they are identical. For the overlapping cases two points are returned, these are the points at which one or both segments need to be broken.

type segmentRelation int

const (
	segmentsDisjoint   segmentRelation = iota
	segmentsCross                      // one point, may be an endpoint of either segment
	segmentsOverlap                    // partial overlap, A and B are each broken once
	segmentsAContainsB                 // A is broken at both endpoints of B
	segmentsBContainsA                 // B is broken at both endpoints of A
	segmentsIdentical
)

func (v segmentRelation) String() string {
	switch v {
	case segmentsCross:
		return "Cross"
	case segmentsOverlap:
		return "Overlap"
	case segmentsAContainsB:
		return "AContainsB"
	case segmentsBContainsA:
		return "BContainsA"
	case segmentsIdentical:
		return "Identical"
	}
	return "Disjoint"
}

// overlaps is true for the collinear relations.
func (v segmentRelation) overlaps() bool {
	return segmentsOverlap <= v
}

// intersectSegments intersects segment a0-a1 with b0-b1 in the XY plane. The segments are put in a canonical order first so that the result does not depend on the argument order.
// see https://www.geometrictools.com/GTE/Mathematics/IntrSegment2Segment2.h
func intersectSegments(a0, a1, b0, b1 Point) (segmentRelation, Point, Point) {
	if a0.same2D(b0) && a1.same2D(b1) || a0.same2D(b1) && a1.same2D(b0) {
		return segmentsIdentical, a0, a1
	}

	// zero-length segments
	if a0.same2D(a1) || b0.same2D(b1) {
		if a0.same2D(a1) && onSegment(a0, b0, b1) {
			return segmentsCross, a0, Point{}
		} else if b0.same2D(b1) && onSegment(b0, a0, a1) {
			return segmentsCross, b0, Point{}
		}
		return segmentsDisjoint, Point{}, Point{}
	}

	// sort each segment by x, y and then the segments themselves, this must happen before evaluating the determinants
	if lessXY(a1, a0) {
		a0, a1 = a1, a0
	}
	if lessXY(b1, b0) {
		b0, b1 = b1, b0
	}
	swapped := false
	if lessXY(b0, a0) {
		a0, a1, b0, b1 = b0, b1, a0, a1
		swapped = true
	}

	// solve a0 + ta*(a1-a0) = b0 + tb*(b1-b0) by Cramer's rule as ta=da/d and tb=db/d
	d := (a1.X-a0.X)*(b0.Y-b1.Y) - (a1.Y-a0.Y)*(b0.X-b1.X)
	da := (b0.X-a0.X)*(b0.Y-b1.Y) - (b0.Y-a0.Y)*(b0.X-b1.X)
	db := (a1.X-a0.X)*(b0.Y-a0.Y) - (a1.Y-a0.Y)*(b0.X-a0.X)
	if d != 0.0 {
		if 0.0 < d {
			if da < 0.0 || d < da || db < 0.0 || d < db {
				return segmentsDisjoint, Point{}, Point{}
			}
		} else if 0.0 < da || da < d || 0.0 < db || db < d {
			return segmentsDisjoint, Point{}, Point{}
		}

		// return vertices exactly when at the end of either segment
		var p Point
		switch {
		case da == 0.0:
			p = a0
		case da == d:
			p = a1
		case db == 0.0:
			p = b0
		case db == d:
			p = b1
		default:
			t := da / d
			p = Point{a0.X + t*(a1.X-a0.X), a0.Y + t*(a1.Y-a0.Y), 0.0}
		}
		return segmentsCross, p, Point{}
	} else if da != 0.0 || db != 0.0 {
		// parallel
		return segmentsDisjoint, Point{}, Point{}
	}

	// collinear, compare along the y-axis for vertical segments and along the x-axis otherwise
	coord := func(p Point) float64 { return p.X }
	if a0.X == a1.X {
		coord = func(p Point) float64 { return p.Y }
	}
	ua0, ua1, ub0, ub1 := coord(a0), coord(a1), coord(b0), coord(b1)
	if ua1 < ub0 {
		return segmentsDisjoint, Point{}, Point{}
	} else if ua1 == ub0 {
		return segmentsCross, a1, Point{} // touching endpoints
	}

	// b0 lies in [a0,a1)
	rel, p0, p1 := segmentsOverlap, b0, a1
	if ub1 <= ua1 {
		rel, p0, p1 = segmentsAContainsB, b0, b1
	} else if ua0 == ub0 {
		rel, p0, p1 = segmentsBContainsA, a0, a1
	}
	if swapped {
		if rel == segmentsAContainsB {
			rel = segmentsBContainsA
		} else if rel == segmentsBContainsA {
			rel = segmentsAContainsB
		}
	}
	return rel, p0, p1
}

package vector

import (
	"fmt"
)

// Contact is the kind of intersection between two polylines.
type Contact int

// see Contact
const (
	NoContact Contact = iota
	Crossing          // the lines cross or overlap
	Touching          // the lines only meet at the first or last vertex of either line
)

func (c Contact) String() string {
	switch c {
	case Crossing:
		return "crossing"
	case Touching:
		return "touching"
	}
	return "none"
}

func checkPolylines(a, b *Polyline) error {
	if a.Empty() {
		return fmt.Errorf("line A: %w", ErrEmptyPolyline)
	} else if b.Empty() {
		return fmt.Errorf("line B: %w", ErrEmptyPolyline)
	}
	return nil
}

// prepare returns the sweep over a and b, or nil when their bounding boxes do not overlap.
func prepare(a, b *Polyline, self bool, o options) *sweep {
	boxA, boxB := o.bounds(a, b)
	boxA, boxB = boxA.Pad(), boxB.Pad()
	if !boxA.Overlaps(boxB, o.withZ) {
		Logger().Debug("bounding boxes do not overlap", "boxA", boxA, "boxB", boxB)
		return nil
	}
	return newSweep(a.coords, b.coords, self, o.withZ, boxA.Intersect(boxB))
}

// Intersect splits line A and B where they intersect and returns the children of both lines. Lines that are not cut are returned as a single copy. When a and b are the same polyline, the line is split where it intersects itself and the children are returned as the first return value, see SelfIntersect.
//
// A line that ends on the other line splits the other line, except when it ends on an existing vertex: both lines are then returned unmodified since the vertex is already there and the lines do not cross. A line that ends in the middle of a segment does split that segment.
//
// A polyline with a single point, or whose points all coincide, is handled as a point and splits the other line where the point lies on it. It is returned as a single point. The input polylines are not modified.
func Intersect(a, b *Polyline, opts ...Option) ([]*Polyline, []*Polyline, error) {
	if a == b {
		children, err := SelfIntersect(a, opts...)
		return children, nil, err
	} else if err := checkPolylines(a, b); err != nil {
		return nil, nil, err
	}

	o := newOptions(opts)
	pa, pointA := pointOf(a)
	pb, pointB := pointOf(b)
	if pointA && pointB {
		return []*Polyline{NewPolyline(pa)}, []*Polyline{NewPolyline(pb)}, nil
	} else if pointA {
		return []*Polyline{NewPolyline(pa)}, splitAtPoint(b, pa, 1, o), nil
	} else if pointB {
		return splitAtPoint(a, pb, 0, o), []*Polyline{NewPolyline(pb)}, nil
	}

	s := prepare(a, b, false, o)
	if s == nil {
		return []*Polyline{a.Copy()}, []*Polyline{b.Copy()}, nil
	}
	zsA := s.crossings()
	zsB := append(crossings(nil), zsA...)
	zsA = zsA.consolidate(0, a.coords, b.coords)
	zsB = zsB.consolidate(1, b.coords, a.coords)
	return splitLine(a.coords, zsA, 0, o.withZ), splitLine(b.coords, zsB, 1, o.withZ), nil
}

// pointOf returns the location of p when it has a single point or all of its points coincide in the XY plane.
func pointOf(p *Polyline) (Point, bool) {
	if p.Len() == 1 || p.Degenerate(false) {
		return p.coords[0], true
	}
	return Point{}, false
}

// SelfIntersect splits line A where it intersects itself. Consecutive segments always share a vertex, which does not count as an intersection unless the segments overlap. The same holds for the first and last segment of a closed line.
func SelfIntersect(a *Polyline, opts ...Option) ([]*Polyline, error) {
	if a.Empty() {
		return nil, fmt.Errorf("line A: %w", ErrEmptyPolyline)
	} else if p, ok := pointOf(a); ok {
		return []*Polyline{NewPolyline(p)}, nil
	}

	o := newOptions(opts)
	o.boxB = o.boxA
	s := prepare(a, a, true, o)
	if s == nil {
		return []*Polyline{a.Copy()}, nil
	}
	zs := s.crossings()
	zs = zs.consolidate(0, a.coords, a.coords)
	return splitLine(a.coords, zs, 0, o.withZ), nil
}

// CheckIntersection returns whether line A and B cross, only touch at the first or last vertex of either line, or do not intersect. It returns as soon as a crossing is found. Collinear overlaps count as crossings. When a and b are the same polyline, self-intersections are checked.
func CheckIntersection(a, b *Polyline, opts ...Option) (Contact, error) {
	if err := checkPolylines(a, b); err != nil {
		return NoContact, err
	}

	o := newOptions(opts)
	self := a == b
	pa, pointA := pointOf(a)
	pb, pointB := pointOf(b)
	if self && pointA {
		return NoContact, nil
	} else if pointA && pointB {
		if pa.same(pb, o.withZ) {
			return Touching, nil
		}
		return NoContact, nil
	} else if pointA || pointB {
		p, line := pa, b
		if pointB {
			p, line = pb, a
		}
		if zs := pointCrossings(line.coords, p, 0); 0 < len(zs) {
			return Touching, nil // a point is its own first and last vertex
		}
		return NoContact, nil
	}

	if self {
		o.boxB = o.boxA
	}
	s := prepare(a, b, self, o)
	if s == nil {
		return NoContact, nil
	}
	return s.contact(), nil
}

// IntersectionPoints returns the points where line A and B intersect, in the order they were found by the sweep from left to right. Collinear overlaps give the points where the overlap starts and ends. Duplicates are removed. When a and b are the same polyline, the self-intersections are returned.
func IntersectionPoints(a, b *Polyline, opts ...Option) ([]Point, error) {
	if err := checkPolylines(a, b); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	self := a == b
	pa, pointA := pointOf(a)
	pb, pointB := pointOf(b)
	if self && pointA {
		return []Point{}, nil
	} else if pointA && pointB {
		if pa.same(pb, o.withZ) {
			return []Point{pa}, nil
		}
		return []Point{}, nil
	} else if pointA || pointB {
		p, line := pa, b
		if pointB {
			p, line = pb, a
		}
		if zs := pointCrossings(line.coords, p, 0); 0 < len(zs) {
			return []Point{zs[0].Point}, nil
		}
		return []Point{}, nil
	}

	if self {
		o.boxB = o.boxA
	}
	s := prepare(a, b, self, o)
	if s == nil {
		return []Point{}, nil
	}
	return s.points(), nil
}

// pointCrossings returns a crossing for each segment of coords on which p lies, p is snapped to a vertex within the representation error.
func pointCrossings(coords []Point, p Point, line int) crossings {
	zs := crossings{}
	for i := 0; i+1 < len(coords); i++ {
		p0, p1 := coords[i], coords[i+1]
		if !onSegment(p, p0, p1) {
			continue
		}
		q := p
		q.Z = 0.0
		if eps := RepresentationError(p0.X, p0.Y); dist2(q, p0) <= eps*eps {
			q.X, q.Y = p0.X, p0.Y
		} else if eps := RepresentationError(p1.X, p1.Y); dist2(q, p1) <= eps*eps {
			q.X, q.Y = p1.X, p1.Y
		}
		z := crossing{Point: q, overlap: false}
		z.seg[line] = i
		z.dist[line] = dist2(q, p0)
		zs = append(zs, z)
	}
	return zs
}

// splitAtPoint splits line where p lies on it, line is 0 for line A and 1 for line B.
func splitAtPoint(line *Polyline, p Point, index int, o options) []*Polyline {
	zs := pointCrossings(line.coords, p, index)
	zs = zs.consolidate(index, line.coords, []Point{p})
	return splitLine(line.coords, zs, index, o.withZ)
}

// Cut splits p where it intersects q and returns the children of p.
func (p *Polyline) Cut(q *Polyline, opts ...Option) ([]*Polyline, error) {
	children, _, err := Intersect(p, q, opts...)
	return children, err
}

// Intersects returns true if p and q cross or touch.
func (p *Polyline) Intersects(q *Polyline, opts ...Option) bool {
	contact, err := CheckIntersection(p, q, opts...)
	return err == nil && contact != NoContact
}

// Intersections returns the points where p and q intersect.
func (p *Polyline) Intersections(q *Polyline, opts ...Option) []Point {
	ps, err := IntersectionPoints(p, q, opts...)
	if err != nil {
		return nil
	}
	return ps
}

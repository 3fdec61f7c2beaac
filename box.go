package vector

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box. The zero value is a box around the origin, use EmptyBox for a box that contains nothing.
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// EmptyBox returns a box that contains no points, extending it by a point gives the box of that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{inf, inf, inf, -inf, -inf, -inf}
}

// Empty returns true if the box contains no points.
func (b Box) Empty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0 || b.Z1 < b.Z0
}

// Extend returns the box grown to include p.
func (b Box) Extend(p Point) Box {
	b.X0 = math.Min(b.X0, p.X)
	b.Y0 = math.Min(b.Y0, p.Y)
	b.Z0 = math.Min(b.Z0, p.Z)
	b.X1 = math.Max(b.X1, p.X)
	b.Y1 = math.Max(b.Y1, p.Y)
	b.Z1 = math.Max(b.Z1, p.Z)
	return b
}

// Overlaps returns true if the boxes overlap or touch. The z extent is only compared when withZ is set.
func (b Box) Overlaps(o Box, withZ bool) bool {
	if b.X1 < o.X0 || o.X1 < b.X0 || b.Y1 < o.Y0 || o.Y1 < b.Y0 {
		return false
	}
	return !withZ || !(b.Z1 < o.Z0 || o.Z1 < b.Z0)
}

// Intersect returns the region in which both boxes overlap, it is empty when they don't.
func (b Box) Intersect(o Box) Box {
	return Box{
		math.Max(b.X0, o.X0), math.Max(b.Y0, o.Y0), math.Max(b.Z0, o.Z0),
		math.Min(b.X1, o.X1), math.Min(b.Y1, o.Y1), math.Min(b.Z1, o.Z1),
	}
}

// Pad returns the box grown outward on each side by the representation error of that side's coordinate, so that intersections on the boundary are not excluded.
func (b Box) Pad() Box {
	if b.Empty() {
		return b
	}
	b.X0 -= RepresentationError(b.X0, b.X0)
	b.Y0 -= RepresentationError(b.Y0, b.Y0)
	b.Z0 -= RepresentationError(b.Z0, b.Z0)
	b.X1 += RepresentationError(b.X1, b.X1)
	b.Y1 += RepresentationError(b.Y1, b.Y1)
	b.Z1 += RepresentationError(b.Z1, b.Z1)
	return b
}

// segmentBox returns the box of the segment p-q.
func segmentBox(p, q Point) Box {
	return EmptyBox().Extend(p).Extend(q)
}

func (b Box) String() string {
	return fmt.Sprintf("[%g; %g; %g]--[%g; %g; %g]", b.X0, b.Y0, b.Z0, b.X1, b.Y1, b.Z1)
}

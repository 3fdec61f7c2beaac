package vector

import (
	"github.com/paulmach/orb"
)

// FromLineString returns a polyline through the points of ls. Orb geometries are 2D, z is zero.
func FromLineString(ls orb.LineString) *Polyline {
	p := &Polyline{make([]Point, 0, len(ls))}
	for _, q := range ls {
		p.Add(q[0], q[1])
	}
	return p
}

// FromPoint returns a polyline with a single point.
func FromPoint(q orb.Point) *Polyline {
	return (&Polyline{}).Add(q[0], q[1])
}

// LineString returns the polyline as an orb line string, dropping z.
func (p *Polyline) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(p.coords))
	for _, coord := range p.coords {
		ls = append(ls, orb.Point{coord.X, coord.Y})
	}
	return ls
}

// Geometry returns the polyline as an orb geometry, a single point polyline becomes an orb.Point.
func (p *Polyline) Geometry() orb.Geometry {
	if len(p.coords) == 1 {
		return orb.Point{p.coords[0].X, p.coords[0].Y}
	}
	return p.LineString()
}

// MultiLineString returns the polylines as a single orb multi line string.
func MultiLineString(ps []*Polyline) orb.MultiLineString {
	mls := make(orb.MultiLineString, 0, len(ps))
	for _, p := range ps {
		mls = append(mls, p.LineString())
	}
	return mls
}

// Bound returns the XY extent of the box as an orb bound.
func (b Box) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.X0, b.Y0},
		Max: orb.Point{b.X1, b.Y1},
	}
}

// BoxFromBound returns a box with the extent of bound, its z extent is zero.
func BoxFromBound(bound orb.Bound) Box {
	return Box{bound.Min[0], bound.Min[1], 0.0, bound.Max[0], bound.Max[1], 0.0}
}
